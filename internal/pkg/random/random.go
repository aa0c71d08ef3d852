package random

import (
	"crypto/rand"
	"io"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var limit = big.NewInt(int64(len(alphabet)))

// Generator produces alphanumeric strings from a random source.
type Generator struct {
	source io.Reader
}

func NewGenerator(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}

	return &Generator{source: source}
}

func (g *Generator) String(n int) (string, error) {
	b := make([]byte, n)

	for i := range b {
		num, err := rand.Int(g.source, limit)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[num.Int64()]
	}

	return string(b), nil
}
