package container

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/config"
	"github.com/focoteam/foco-backend/internal/delivery/http"
	"github.com/focoteam/foco-backend/internal/delivery/http/handler"
	"github.com/focoteam/foco-backend/internal/delivery/http/middleware"
	"github.com/focoteam/foco-backend/internal/infrastructure/database"
	"github.com/focoteam/foco-backend/internal/infrastructure/logger"
	"github.com/focoteam/foco-backend/internal/infrastructure/server"
	"github.com/focoteam/foco-backend/internal/repository/postgres"
	redisrepo "github.com/focoteam/foco-backend/internal/repository/redis"
	"github.com/focoteam/foco-backend/internal/usecase/search"
	"github.com/focoteam/foco-backend/internal/usecase/suggest"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *goredis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional: without it suggestions go uncached and rate
	// limiting is off, but search still works.
	var (
		redisClient *goredis.Client
		cache       *redisrepo.Cache
	)
	if cfg.Redis.Host != "" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, continuing without cache and rate limiting", zap.Error(err))
		} else {
			cache = redisrepo.NewCache(redisClient, log)
		}
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(db, log)

	// Use cases
	searchUseCase := search.NewSearchUseCase(profileRepo, log)
	var suggestCache suggest.Cache
	if cache != nil {
		suggestCache = cache
	}
	suggestUseCase := suggest.NewSuggestUseCase(profileRepo, suggestCache, log)

	// Handlers and middleware
	searchHandler := handler.NewSearchHandler(searchUseCase, suggestUseCase)
	profileHandler := handler.NewProfileHandler(searchUseCase)
	identity := middleware.NewIdentity(cfg.Auth.AccessSecret, log)

	var rateLimitHandler gin.HandlerFunc
	if cache != nil {
		rateLimitHandler = middleware.RateLimit(cache, cfg.Search.RateLimitPerMinute, log)
	}

	router := http.NewRouter(
		searchHandler,
		profileHandler,
		identity,
		rateLimitHandler,
		middleware.RequestLogger(log),
	)

	srv := server.NewServer(&cfg.Server, router.Setup(), log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	_ = c.Logger.Sync()
	return nil
}
