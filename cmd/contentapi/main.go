// Command contentapi serves the content platform API.
//
// @title                       Content API
// @version                     1.0
// @description                 Users, articles and comments behind bearer-token authentication and ownership authorization.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/quillpress/content-api/internal/api"
	"github.com/quillpress/content-api/internal/api/handler"
	"github.com/quillpress/content-api/internal/api/metrics"
	"github.com/quillpress/content-api/internal/core/service"
	"github.com/quillpress/content-api/internal/infrastructure/config"
	mongodb "github.com/quillpress/content-api/internal/infrastructure/db/mongo"
	redisdb "github.com/quillpress/content-api/internal/infrastructure/db/redis"
	"github.com/quillpress/content-api/pkg/logger"
)

const (
	serviceName     = "content-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		ClientName: serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	ownership := redisdb.NewOwnershipCache(
		rdb,
		mongodb.NewResourceStore(db),
		cfg.Redis.OwnershipTTL,
		func(hit bool) {
			result := "miss"
			if hit {
				result = "hit"
			}
			metrics.OwnershipCacheTotal.WithLabelValues(result).Inc()
		},
		log,
	)

	// --- Services ---
	hasher := service.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens, err := service.NewTokenService(service.TokenConfig{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    cfg.Auth.TokenTTL,
		Issuer: cfg.Auth.JWTIssuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("token service")
	}
	verifier, err := service.NewCredentialVerifier(users, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("credential verifier")
	}
	authService := service.NewAuthService(users, hasher, verifier, tokens, cfg.Auth.AdminSecret, log)
	contentService := service.NewContentService(service.ContentDeps{
		Resources:   ownership,
		Articles:    mongodb.NewArticleRepository(db),
		Comments:    mongodb.NewCommentRepository(db),
		Users:       users,
		Invalidator: ownership,
		Recorder:    metrics.Recorder{},
	}, log)

	e := api.NewRouter(api.Deps{
		Log:     log,
		Auth:    authService,
		Content: contentService,
		Tokens:  tokens,
		Health: map[string]handler.Check{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("HTTP server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
