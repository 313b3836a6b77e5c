package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/config"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type routes interface {
	RegisterRoutes(r chi.Router)
}

type App struct {
	log        logger.Logger
	httpServer *http.Server
	port       int
	cfg        config.HTTPConfig
}

// NewRouter mounts every handler set plus /metrics served from gatherer.
func NewRouter(gatherer prometheus.Gatherer, handlers ...routes) http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID, middleware.Recoverer)

	for _, h := range handlers {
		h.RegisterRoutes(mux)
	}

	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux
}

func NewApp(log logger.Logger, cfg config.HTTPConfig, handler http.Handler) *App {
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &App{
		log:        log,
		httpServer: httpServer,
		port:       cfg.Port,
		cfg:        cfg,
	}
}

func (a *App) RunWithPanic() {
	if err := a.Run(); err != nil {
		panic(fmt.Sprintf("failed to run http server: %v", err))
	}
}

// Run blocks until the server stops. A graceful Stop is not an error.
func (a *App) Run() error {
	const op = "httpapp.Run"

	a.log.Info(op, logger.Int("port", a.port))

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.Stop"

	a.log.Info(op, logger.Int("port", a.port))

	ctx, cancel := context.WithTimeout(ctx, a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
