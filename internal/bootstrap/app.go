package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"mindscore-backend/internal/analyses"
	"mindscore-backend/internal/classifier"
	"mindscore-backend/internal/classifier/remote"
	"mindscore-backend/internal/services/health"
	"mindscore-backend/internal/shared/config"
	"mindscore-backend/internal/shared/server"
	"mindscore-backend/internal/shared/server/middleware"
	"mindscore-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	Classifiers     classifier.Set
	AnalysesService *analyses.Service
	Health          *health.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	set, err := BuildClassifiers(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := buildRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		Redis:       rdb,
		Classifiers: set,
		AnalysesService: analyses.NewService(set, cfg.Scoring.FeedbackOptions()),
	}

	checks := map[string]health.Check{}
	deps := server.RouterDeps{Analyses: app.AnalysesService}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		deps.Limiter = middleware.NewRedisLimiter(rdb, "mindscore:ratelimit")
	}
	app.Health = health.NewService(checks)
	deps.Health = app.Health

	app.Router = server.NewRouter(cfg, deps)
	return app, nil
}

// BuildClassifiers picks the remote model service when configured and the
// lexicon otherwise. Remote classifiers retry transient failures once.
func BuildClassifiers(cfg config.Config) (classifier.Set, error) {
	if !cfg.UseRemoteClassifier() {
		telemetry.Info("bootstrap: CLASSIFIER_URL empty; using lexicon classifiers", nil)
		return classifier.NewLexiconSet(), nil
	}
	client, err := remote.NewClient(cfg.ClassifierURL, cfg.ClassifierAPIKey, cfg.ClassifierTimeout)
	if err != nil {
		return classifier.Set{}, err
	}
	set := client.Set()
	return classifier.Set{
		TextEmotion: classifier.WithRetry(set.TextEmotion, "text_emotion"),
		Stress:      classifier.WithRetry(set.Stress, "stress"),
		Sentiment:   classifier.WithRetry(set.Sentiment, "sentiment"),
	}, nil
}

func buildRedis(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		telemetry.Info("bootstrap: REDIS_URL empty; using in-process rate limiter", nil)
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		if cfg.Env == "production" {
			return nil, fmt.Errorf("ping redis: %w", err)
		}
		telemetry.Warn("bootstrap: redis unreachable; using in-process rate limiter", map[string]any{"error": err.Error()})
		return nil, nil
	}
	return rdb, nil
}

// Close releases external connections.
func (a *App) Close() error {
	if a == nil || a.Redis == nil {
		return nil
	}
	return a.Redis.Close()
}
