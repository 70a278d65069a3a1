package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "cliver/internal/app"
	"cliver/internal/entities"
	"cliver/internal/handlers/rest/dashboard_client_get"
	"cliver/internal/handlers/rest/dashboard_courier_get"
	"cliver/internal/handlers/rest/healthcheck_head"
	"cliver/internal/handlers/rest/login_post"
	"cliver/internal/handlers/rest/message_post"
	"cliver/internal/handlers/rest/messages_get"
	"cliver/internal/handlers/rest/mission_cancel_post"
	"cliver/internal/handlers/rest/mission_claim_post"
	"cliver/internal/handlers/rest/mission_complete_post"
	"cliver/internal/handlers/rest/mission_get"
	"cliver/internal/handlers/rest/mission_post"
	"cliver/internal/handlers/rest/mission_start_post"
	"cliver/internal/handlers/rest/missions_available_get"
	"cliver/internal/handlers/rest/missions_client_get"
	"cliver/internal/handlers/rest/missions_courier_get"
	"cliver/internal/handlers/rest/ping_get"
	"cliver/internal/handlers/rest/plans_get"
	"cliver/internal/handlers/rest/signup_post"
	"cliver/internal/handlers/rest/transactions_get"
	"cliver/internal/pkg/config"
	"cliver/internal/pkg/dotenv"
	metrics_system "cliver/internal/pkg/metrics"
	authmw "cliver/internal/pkg/middlewares/auth"
	"cliver/internal/pkg/middlewares/graceful_shutdown"
	"cliver/internal/pkg/middlewares/metrics"
	"cliver/internal/pkg/middlewares/rate_limiter"
	"cliver/internal/pkg/middlewares/timeout"
	"cliver/internal/pkg/postgres"
	"cliver/pkg/logger"
	"cliver/pkg/logger/zap_adapter"
	"cliver/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting cliver application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof, кейс игнорируется
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// публичные маршруты: auth и витрина тарифов
	router.Handle("/auth/signup", signup_post.New(log, app.GatewayAuth)).Methods("POST")
	router.Handle("/auth/login", login_post.New(log, app.GatewayAuth)).Methods("POST")
	router.Handle("/plans", plans_get.New(log, app.ServicePlan)).Methods("GET")

	// все остальное за Bearer-токеном
	authed := router.NewRoute().Subrouter()
	authed.Use(authmw.Middleware(log, cfg.Auth.JWTSecret))

	requireClient := authmw.RequireRole(entities.RoleClient)
	requireCourier := authmw.RequireRole(entities.RoleLivreur)

	// литеральные пути до {id}-шаблона, иначе mux сматчит их как id
	authed.Handle("/missions", requireClient(mission_post.New(log, app.ServiceMission))).Methods("POST")
	authed.Handle("/missions/client", requireClient(missions_client_get.New(log, app.ServiceMission))).Methods("GET")
	authed.Handle("/missions/available", requireCourier(missions_available_get.New(log, app.ServiceMission))).Methods("GET")
	authed.Handle("/missions/courier", requireCourier(missions_courier_get.New(log, app.ServiceMission))).Methods("GET")

	authed.Handle("/missions/{id}", mission_get.New(log, app.ServiceMission)).Methods("GET")
	authed.Handle("/missions/{id}/messages", messages_get.New(log, app.ServiceMessage)).Methods("GET")
	authed.Handle("/missions/{id}/claim", requireCourier(mission_claim_post.New(log, app.ServiceMission))).Methods("POST")
	authed.Handle("/missions/{id}/start", requireCourier(mission_start_post.New(log, app.ServiceMission))).Methods("POST")
	authed.Handle("/missions/{id}/complete", requireCourier(mission_complete_post.New(log, app.ServiceMission))).Methods("POST")
	authed.Handle("/missions/{id}/cancel", requireClient(mission_cancel_post.New(log, app.ServiceMission))).Methods("POST")

	authed.Handle("/messages", message_post.New(log, app.ServiceMessage)).Methods("POST")
	authed.Handle("/transactions", transactions_get.New(log, app.ServiceTransaction)).Methods("GET")

	authed.Handle("/dashboard/client", requireClient(dashboard_client_get.New(log, app.ServiceMission))).Methods("GET")
	authed.Handle("/dashboard/courier", requireCourier(dashboard_courier_get.New(log, app.ServiceMission))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
