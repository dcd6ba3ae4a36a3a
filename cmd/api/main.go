package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/communityfund/fund-nexus/internal/api"
	"github.com/communityfund/fund-nexus/internal/core/service"
	"github.com/communityfund/fund-nexus/internal/infrastructure/db"
	memorystore "github.com/communityfund/fund-nexus/internal/infrastructure/db/memory"
	mongostore "github.com/communityfund/fund-nexus/internal/infrastructure/db/mongo"
	redisstore "github.com/communityfund/fund-nexus/internal/infrastructure/db/redis"
	"github.com/communityfund/fund-nexus/internal/pkg/config"
	"github.com/communityfund/fund-nexus/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Dependencies{
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	}

	stores, err := openStores(ctx, cfg, &deps)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("store init failed")
	}

	if err := db.Seed(ctx, stores, cfg.AdminUsername, cfg.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	// Redis is optional: without it dashboards are recomputed per
	// request and contribution writes skip cache invalidation.
	var reportCache *redisstore.ReportCache
	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, report caching disabled")
	} else {
		reportCache = redisstore.NewReportCache(rdb)
		deps.Redis = rdb
		defer rdb.Close()
	}

	contributionService := service.NewContributionService(stores.Contributions, invalidator(reportCache), log)
	deps.Auth = service.NewAuthService(stores.Users, cfg.JWTSecret, tokenTTL, log)
	deps.Contributions = contributionService
	deps.Mentors = service.NewMentorService(stores.Mentors, log)
	deps.Localities = service.NewLocalityService(stores.Localities, log)
	deps.Reports = service.NewReportService(contributionService, cache(reportCache), log)

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("api start failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("api stopped gracefully")
}

// openStores builds the repository bundle for the configured driver and
// records the Mongo handle on deps for the readiness probe.
func openStores(ctx context.Context, cfg *config.Config, deps *api.Dependencies) (db.Stores, error) {
	if cfg.StoreDriver == "memory" {
		return db.Stores{
			Users:         memorystore.NewUserStore(),
			Contributions: memorystore.NewContributionStore(),
			Mentors:       memorystore.NewMentorStore(),
			Localities:    memorystore.NewLocalityStore(),
		}, nil
	}

	_, database, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return db.Stores{}, err
	}
	deps.Mongo = database

	users := mongostore.NewUserRepository(database)
	contributions := mongostore.NewContributionRepository(database)
	mentors := mongostore.NewMentorRepository(database)
	localities := mongostore.NewLocalityRepository(database)

	for _, ensure := range []func(context.Context) error{
		users.EnsureIndexes,
		contributions.EnsureIndexes,
		mentors.EnsureIndexes,
		localities.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			return db.Stores{}, err
		}
	}

	return db.Stores{
		Users:         users,
		Contributions: contributions,
		Mentors:       mentors,
		Localities:    localities,
	}, nil
}

// invalidator adapts the optional cache to the service interface
// without handing it a typed nil.
func invalidator(c *redisstore.ReportCache) service.ReportInvalidator {
	if c == nil {
		return nil
	}
	return c
}

func cache(c *redisstore.ReportCache) service.DashboardCache {
	if c == nil {
		return nil
	}
	return c
}
