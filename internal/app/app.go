package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/config"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/databases/postgres"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

func setupDatabase(ctx context.Context, log logger.Logger, cfg *config.PostgresConfig) (*postgres.PgDB, error) {
	postgresDB, err := postgres.NewPostgresDB(ctx, log, cfg.DSN(), postgres.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return postgresDB, nil
}

// newRegistry is the per-process registry served on /metrics.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// closeAll closes in order and reports every failure.
func closeAll(closers ...io.Closer) error {
	var errs []error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
