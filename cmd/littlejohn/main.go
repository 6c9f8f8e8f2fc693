// Command littlejohn runs the authentication service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/littlejohn/internal/cache"
	memcache "github.com/dropDatabas3/littlejohn/internal/cache/memory"
	redcache "github.com/dropDatabas3/littlejohn/internal/cache/redis"
	"github.com/dropDatabas3/littlejohn/internal/config"
	httpx "github.com/dropDatabas3/littlejohn/internal/http"
	authctrl "github.com/dropDatabas3/littlejohn/internal/http/controllers/auth"
	healthctrl "github.com/dropDatabas3/littlejohn/internal/http/controllers/health"
	"github.com/dropDatabas3/littlejohn/internal/http/router"
	"github.com/dropDatabas3/littlejohn/internal/http/server"
	authsvc "github.com/dropDatabas3/littlejohn/internal/http/services/auth"
	jwtx "github.com/dropDatabas3/littlejohn/internal/jwt"
	"github.com/dropDatabas3/littlejohn/internal/observability/logger"
	"github.com/dropDatabas3/littlejohn/internal/store/cached"
	"github.com/dropDatabas3/littlejohn/internal/store/pg"
	"github.com/jackc/pgx/v5/pgxpool"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "littlejohn:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional, real deployments use the environment directly.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       cfg.Log.Level,
		ServiceName: "littlejohn",
		Version:     version,
	})
	defer func() { _ = logger.Sync() }()

	log := logger.Named("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Flags.Migrate {
		log.Info("running migrations")
		if err := pg.Migrate(ctx, cfg.Storage.DSN); err != nil {
			return err
		}
	}

	store, err := pg.New(ctx, cfg.Storage.DSN, pg.Options{
		MaxConns:        cfg.Storage.Postgres.MaxConns,
		MinConns:        cfg.Storage.Postgres.MinConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime(),
	})
	if err != nil {
		return err
	}
	defer store.Close()

	healthChecks := []healthctrl.Check{
		{Name: "postgres", Pinger: store, Required: true},
	}

	var userCache cache.Cache
	switch cfg.Cache.Kind {
	case "redis":
		rc := redcache.New(cfg.Cache.Redis.Addr, cfg.Cache.Redis.DB, cfg.Cache.Redis.Prefix)
		userCache = rc
		healthChecks = append(healthChecks, healthctrl.Check{Name: "redis", Pinger: rc})
	case "off":
		userCache = cache.Nop{}
	default:
		userCache = memcache.New(cfg.MemoryCacheTTL())
	}

	issuer, err := jwtx.NewIssuer(cfg.JWT.Issuer, cfg.JWT.Secret, cfg.AccessTTL())
	if err != nil {
		return err
	}

	// Login reads users through the cache; register stays on the raw
	// repository so a fresh signup is never shadowed by a stale miss.
	cachedUsers := cached.New(store.Users(), userCache, cfg.UserCacheTTL())

	controllers := authctrl.NewControllers(
		authsvc.NewCredentialsService(authsvc.CredentialsDeps{Users: cachedUsers}),
		authsvc.NewRegisterService(authsvc.RegisterDeps{Users: store.Users()}),
		authsvc.NewLoginService(authsvc.LoginDeps{Tokens: store.Tokens(), Issuer: issuer}),
		authsvc.NewRefreshService(authsvc.RefreshDeps{Tokens: store.Tokens(), Issuer: issuer}),
	)

	metricsHandler, err := httpx.RegisterMetrics(httpx.MetricsConfig{
		Pool: func() *pgxpool.Pool { return store.Pool() },
	})
	if err != nil {
		return err
	}

	handler := router.New(router.Deps{
		Auth:           controllers,
		Health:         healthctrl.NewHealthController(version, healthChecks...),
		Metrics:        httpx.WithMetrics(),
		MetricsHandler: metricsHandler,
	})

	srv := server.New(server.Options{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.WriteTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	log.Info("service started", logger.String("addr", cfg.Server.Addr))
	return g.Wait()
}
