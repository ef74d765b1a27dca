package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/homegrid/homegrid/internal/config"
	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/httpserver"
	"github.com/homegrid/homegrid/internal/httpserver/deps"
	"github.com/homegrid/homegrid/internal/logger"
	"github.com/homegrid/homegrid/internal/redis"
	"github.com/homegrid/homegrid/internal/scheduler"
	"github.com/homegrid/homegrid/internal/session"
	"github.com/homegrid/homegrid/internal/sources/bootstrap"
	redisstore "github.com/homegrid/homegrid/internal/store/redis"
	"github.com/homegrid/homegrid/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	controller  *session.Controller
	persister   *scheduler.Persister
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	store := redisstore.NewStore(redisClient)
	loader := bootstrap.NewLoader(cfg.DefaultConfigFile)

	// Initial load: storage slot first, bundled default as fallback.
	// Both failing means there is no document to serve - fatal.
	doc, err := loadInitialDocument(store, loader, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to load a dashboard config: %v", err)
		os.Exit(1)
	}

	persister := scheduler.NewPersister(store, loggerClient, cfg.SaveTimeout)
	controller := session.NewController(doc, persister, loggerClient)

	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		AllowedHosts:   cfg.AllowedHosts,
		AllowedCIDRS:   cfg.AllowedCIDRS,
		TrustProxy:     cfg.TrustProxy,
		Controller:     controller,
		Store:          store,
		Bootstrap:      loader,
		ImportMaxBytes: cfg.ImportMaxBytes,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		controller:  controller,
		persister:   persister,
	}
}

// loadInitialDocument resolves the startup document: the storage slot
// wins; an empty or unreadable slot falls back to the bundled default.
func loadInitialDocument(store *redisstore.Store, loader *bootstrap.Loader, log logger.Logger) (*domain.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := store.Load(ctx)
	if err != nil {
		log.Warn("failed to read config slot, falling back to default config",
			logger.Error(err))
	}
	if doc != nil {
		log.Info("loaded dashboard config from storage",
			logger.Int("categories", len(doc.Categories)))
		return doc, nil
	}

	doc, err = loader.Load()
	if err != nil {
		return nil, fmt.Errorf("storage slot empty and default config unavailable: %w", err)
	}
	log.Info("loaded default dashboard config",
		logger.Int("categories", len(doc.Categories)))
	return doc, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting homegrid v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("homegrid %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.persister.Start(ctx)
	a.logger.Info("persistence worker started")

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Flush any pending save before closing Redis.
	a.persister.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ homegrid stopped cleanly")
	return nil
}
