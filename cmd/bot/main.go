package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/sessionsync/internal/common/clock"
	"github.com/KirkDiggler/sessionsync/internal/common/logger"
	"github.com/KirkDiggler/sessionsync/internal/common/uuid"
	"github.com/KirkDiggler/sessionsync/internal/config"
	"github.com/KirkDiggler/sessionsync/internal/handlers/discord"
	"github.com/KirkDiggler/sessionsync/internal/repositories/availability"
	"github.com/KirkDiggler/sessionsync/internal/repositories/keyspace"
	"github.com/KirkDiggler/sessionsync/internal/repositories/session"
	"github.com/KirkDiggler/sessionsync/internal/roster"
	"github.com/KirkDiggler/sessionsync/internal/services/calendar"
	"github.com/KirkDiggler/sessionsync/internal/services/messaging"
	"github.com/KirkDiggler/sessionsync/internal/services/scheduler"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// purger removes everything a repository wrote during this run
type purger interface {
	Purge(ctx context.Context) error
}

// stores bundles the repositories with whatever must run at shutdown
type stores struct {
	availability availability.Repository
	sessions     session.Repository

	// namespace is the redis key prefix for this run, empty for the memory store
	namespace string
	close     func(ctx context.Context)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	err = run(cfg, zapLogger)
	if err != nil {
		zapLogger.Error("bot exited with error", zap.Error(err))
	}

	// os.Exit skips deferred calls, so flush first
	_ = zapLogger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, zapLogger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st, err := newStores(ctx, cfg, uuid.New(), zapLogger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		st.close(ctx)
	}()

	location, err := time.LoadLocation(cfg.DisplayTimeZone)
	if err != nil {
		return fmt.Errorf("load display time zone: %w", err)
	}

	systemClock := &clock.DefaultClock{}
	band := roster.Default()

	provider, err := calendar.NewSimulated(&calendar.SimulatedConfig{
		ConnectDelay: cfg.CalendarConnectDelay,
		CreateDelay:  cfg.CalendarCreateDelay,
		Clock:        systemClock,
		Logger:       zapLogger,
	})
	if err != nil {
		return fmt.Errorf("create calendar provider: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("create messaging service: %w", err)
	}

	schedulerSvc, err := scheduler.New(&scheduler.Config{
		Threshold:         cfg.SessionThreshold,
		SlotTimes:         cfg.SlotTimes,
		UpcomingDays:      cfg.UpcomingDays,
		SessionLength:     cfg.SessionLength,
		Location:          location,
		SimulatedCalendar: true,
		Roster:            band,
		AvailabilityRepo:  st.availability,
		SessionRepo:       st.sessions,
		Calendar:          provider,
		Messaging:         messagingSvc,
		Clock:             systemClock,
		Logger:            zapLogger,
	})
	if err != nil {
		return fmt.Errorf("create scheduler service: %w", err)
	}

	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		AnnounceChannelID: cfg.AnnounceChannelID,
		Members:           band.Members(),
		Scheduler:         schedulerSvc,
		Messaging:         messagingSvc,
		Logger:            zapLogger,
	})
	if err != nil {
		return fmt.Errorf("create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		zapLogger.Warn("error stopping bot", zap.Error(err))
	}

	zapLogger.Info("bot has been shut down")
	return nil
}

// newStores builds the configured repositories. Redis state lives under a namespace
// unique to this run and is purged on shutdown.
func newStores(ctx context.Context, cfg *config.Config, gen uuid.Generator, zapLogger *zap.Logger) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		return &stores{
			availability: availability.NewMemory(),
			sessions:     session.NewMemory(),
			close:        func(context.Context) {},
		}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	st, err := newRedisStores(ctx, redisClient, gen, zapLogger)
	if err != nil {
		if closeErr := redisClient.Close(); closeErr != nil {
			zapLogger.Warn("failed to close redis client", zap.Error(closeErr))
		}
		return nil, err
	}
	return st, nil
}

func newRedisStores(ctx context.Context, redisClient *redis.Client, gen uuid.Generator, zapLogger *zap.Logger) (*stores, error) {
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	namespace := keyspace.New(gen.NewRunID())
	zapLogger.Info("using redis store", zap.String("addr", redisClient.Options().Addr), zap.String("namespace", namespace))

	availabilityRepo, err := availability.NewRedis(&availability.Config{
		RedisClient: redisClient,
		Namespace:   namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create availability repository: %w", err)
	}

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
		Namespace:   namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("create session repository: %w", err)
	}

	purgers := []purger{availabilityRepo, sessionRepo}

	return &stores{
		availability: availabilityRepo,
		sessions:     sessionRepo,
		namespace:    namespace,
		close: func(ctx context.Context) {
			for _, p := range purgers {
				if err := p.Purge(ctx); err != nil {
					zapLogger.Warn("failed to purge redis namespace", zap.String("namespace", namespace), zap.Error(err))
				}
			}
			zapLogger.Info("purged redis namespace", zap.String("namespace", namespace))
			if err := redisClient.Close(); err != nil {
				zapLogger.Warn("failed to close redis client", zap.Error(err))
			}
		},
	}, nil
}
