package server

import (
	"context"
	"log/slog"
	"net/http"

	"club-lineup-service/internal/app/lineups"
	appsquads "club-lineup-service/internal/app/squads"
	"club-lineup-service/internal/config"
	httpserver "club-lineup-service/internal/http"
	"club-lineup-service/internal/http/handlers"
	"club-lineup-service/internal/http/middleware"
	"club-lineup-service/internal/logging"
	"club-lineup-service/internal/metrics"
	"club-lineup-service/internal/poller"
	"club-lineup-service/internal/providers"
	"club-lineup-service/internal/providers/fixture"
	"club-lineup-service/internal/store"
	"club-lineup-service/internal/tactics"
)

var metricsSetup = metrics.Setup

// Server owns the wired components and their lifecycle.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	squadsService *appsquads.Service
	lineupService *lineups.Service
	sessions      *tactics.Manager
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	closeStore    func() error
}

// New constructs a server with default provider, store, and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.SquadProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = buildProvider(cfg)
	}
	provider = providers.NewRetryingProvider(provider, logger, recorder, providers.NameOf(provider, cfg.Provider), 0, 0)

	squadStore, closeStore := buildStore(cfg, logger)
	squadSvc := appsquads.NewService(squadStore)

	sessions := tactics.NewManager(tactics.NewFSStore(cfg.Tactics.Dir), logger)
	lineupSvc := lineups.NewService(squadSvc, sessions, logger, recorder)

	plr := poller.New(provider, squadSvc, logger, recorder, cfg.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, squadSvc, lineupSvc, sessions, logger, provider, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		squadsService: squadSvc,
		lineupService: lineupSvc,
		sessions:      sessions,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		closeStore:    closeStore,
	}
}

func buildProvider(cfg config.Config) providers.SquadProvider {
	// Only the fixture provider ships today; the roster, transfer, and
	// pack-opening subsystems plug in behind the same interface.
	_ = cfg
	return fixture.New()
}

func buildStore(cfg config.Config, logger *slog.Logger) (appsquads.Store, func() error) {
	if cfg.Store.Backend == "sqlite" {
		s, err := store.NewSQLiteStore(cfg.Store.SQLitePath)
		if err == nil {
			return s, s.Close
		}
		logging.Warn(logger, "sqlite store unavailable, falling back to memory", "error", err)
	}
	return store.NewMemoryStore(), nil
}

func buildHTTPServer(cfg config.Config, squadSvc *appsquads.Service, lineupSvc *lineups.Service, sessions *tactics.Manager, logger *slog.Logger, provider providers.SquadProvider, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(squadSvc, lineupSvc, sessions, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if cfg.AdminToken != "" {
		admin := handlers.NewAdminHandler(squadSvc, provider, cfg.AdminToken, logger)
		router.HandleFunc("/admin/squads/refresh", admin.RefreshSquads)
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop roster refresh", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.closeStore != nil {
		if err := s.closeStore(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
