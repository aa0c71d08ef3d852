package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/SergeyKozhin/crm-calendar/internal/api"
	drafts_service "github.com/SergeyKozhin/crm-calendar/internal/business/drafts"
	events_service "github.com/SergeyKozhin/crm-calendar/internal/business/events"
	"github.com/SergeyKozhin/crm-calendar/internal/config"
	"github.com/SergeyKozhin/crm-calendar/internal/database"
	"github.com/SergeyKozhin/crm-calendar/internal/database/events"
	"github.com/SergeyKozhin/crm-calendar/internal/memstore"
	"github.com/SergeyKozhin/crm-calendar/internal/model"
	"github.com/SergeyKozhin/crm-calendar/internal/pkg/random"
	"github.com/SergeyKozhin/crm-calendar/internal/redis"
	"github.com/SergeyKozhin/crm-calendar/internal/seed"
	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 5 * time.Second

type eventsRepository interface {
	CreateEvent(ctx context.Context, event *model.Event) error
	GetEventByID(ctx context.Context, id string) (*model.Event, error)
	GetEvents(ctx context.Context) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type draftsRepository interface {
	GetDraft(ctx context.Context, session string) (*model.Draft, error)
	SaveDraft(ctx context.Context, session string, draft *model.Draft) error
	DeleteDraft(ctx context.Context, session string) error
}

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initializae logger: %v", err)
	}

	eventsRepository, err := initEventsRepository(ctx, logger)
	if err != nil {
		logger.Fatalw("unable to initialize events storage", "err", err)
	}
	draftsRepository := initDraftsRepository(logger)

	eventsService := events_service.NewService(eventsRepository, random.NewGenerator(rand.Reader), config.IDLength(), time.Now)
	draftsService := drafts_service.NewService(draftsRepository, eventsService, time.Now, logger)

	if err := seedEvents(ctx, logger, eventsService); err != nil {
		logger.Fatalw("unable to seed events", "err", err)
	}

	api, err := api.NewApi(
		logger,
		eventsService,
		draftsService,
		config.MaxBodyBytes(),
		config.PadMonth(),
	)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	closer.Bind(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("Failed shutting down server", "err", err)
		}
	})

	go func() {
		logger.Infow("Started server", "port", config.Port())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server error", "err", err)
			closer.Close()
		}
	}()

	closer.Hold()
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}

// initEventsRepository uses postgres when it is configured and an in-memory
// store otherwise.
func initEventsRepository(ctx context.Context, logger *zap.SugaredLogger) (eventsRepository, error) {
	if config.PostgresURL() == "" {
		logger.Infow("Using in-memory events storage")
		return memstore.NewEvents(), nil
	}

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		return nil, err
	}

	repo := events.NewRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}

	logger.Infow("Using postgres events storage")
	return repo, nil
}

func initDraftsRepository(logger *zap.SugaredLogger) draftsRepository {
	if config.RedisURL() == "" {
		logger.Infow("Using in-memory drafts storage", "ttl", config.DraftTTL())
		return memstore.NewDrafts(config.DraftTTL(), time.Now)
	}

	pool := redis.NewRedisPool(logger, config.RedisURL())
	logger.Infow("Using redis drafts storage", "ttl", config.DraftTTL())
	return redis.NewDraftRepository(pool, config.DraftTTL(), logger)
}

// seedEvents loads the configured seed events into an empty store.
func seedEvents(ctx context.Context, logger *zap.SugaredLogger, eventsService *events_service.Service) error {
	if config.SeedFile() == "" && !config.SeedDemo() {
		return nil
	}

	existing, err := eventsService.GetEvents(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Infow("Skipping seed, storage is not empty", "events", len(existing))
		return nil
	}

	var entries []*model.EventCreate
	if config.SeedDemo() {
		entries = append(entries, seed.Demo()...)
	}
	if config.SeedFile() != "" {
		fromFile, err := seed.LoadFile(config.SeedFile())
		if err != nil {
			return err
		}
		entries = append(entries, fromFile...)
	}

	created, err := seed.Apply(ctx, eventsService, entries, logger)
	if err != nil {
		return err
	}

	logger.Infow("Seeded events", "created", created, "total", len(entries))
	return nil
}
