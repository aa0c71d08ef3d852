package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	_ "github.com/joho/godotenv/autoload"
)

type config struct {
	Production   bool          `env:"PRODUCTION" envDefault:"false"`
	Port         string        `env:"PORT" envDefault:"80"`
	PostgresUrl  string        `env:"POSTGRES_URL" envDefault:""`
	RedisUrl     string        `env:"REDIS_URL" envDefault:""`
	DraftTTL     time.Duration `env:"DRAFT_TTL" envDefault:"24h"`
	SeedFile     string        `env:"SEED_FILE" envDefault:""`
	SeedDemo     bool          `env:"SEED_DEMO" envDefault:"false"`
	PadMonth     bool          `env:"PAD_MONTH" envDefault:"true"`
	IDLength     int           `env:"ID_LENGTH" envDefault:"9"`
	MaxBodyBytes int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
}

var conf config

func init() {
	if err := env.Parse(&conf); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
}

func Production() bool {
	return conf.Production
}

func Port() string {
	return conf.Port
}

// PostgresURL is empty when events are kept in memory.
func PostgresURL() string {
	return conf.PostgresUrl
}

// RedisURL is empty when drafts are kept in memory.
func RedisURL() string {
	return conf.RedisUrl
}

func DraftTTL() time.Duration {
	return conf.DraftTTL
}

func SeedFile() string {
	return conf.SeedFile
}

func SeedDemo() bool {
	return conf.SeedDemo
}

func PadMonth() bool {
	return conf.PadMonth
}

func IDLength() int {
	return conf.IDLength
}

func MaxBodyBytes() int64 {
	return conf.MaxBodyBytes
}
