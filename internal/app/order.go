package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	httpapp "github.com/tumbleweedd/two_services_system/orderflow/internal/app/http"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/cache_impl"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/config"
	orderCreationHandler "github.com/tumbleweedd/two_services_system/orderflow/internal/delivery/http/order/create"
	orderRetrievalHandler "github.com/tumbleweedd/two_services_system/orderflow/internal/delivery/http/order/get"
	orderStatusHandler "github.com/tumbleweedd/two_services_system/orderflow/internal/delivery/http/order/status"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	orderRepository "github.com/tumbleweedd/two_services_system/orderflow/internal/repository/order"
	outBoxRepository "github.com/tumbleweedd/two_services_system/orderflow/internal/repository/outBox"
	orderCreationService "github.com/tumbleweedd/two_services_system/orderflow/internal/services/order/create"
	orderRetrievalService "github.com/tumbleweedd/two_services_system/orderflow/internal/services/order/get"
	orderStatusService "github.com/tumbleweedd/two_services_system/orderflow/internal/services/order/status"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/services/outBox/send"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/databases/postgres"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// OrderApp is the order side process: the order API plus the outbox relay.
type OrderApp struct {
	log logger.Logger
	cfg *config.Config

	db         *postgres.PgDB
	producer   *producer.Producer
	relay      *send.Service
	HTTPServer *httpapp.App
}

func NewOrderApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*OrderApp, error) {
	db, err := setupDatabase(ctx, log, &cfg.Postgres)
	if err != nil {
		return nil, err
	}

	kafkaProducer, err := producer.NewProducer(log, cfg.Kafka.BrokerList, cfg.Kafka.ClientID)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	reg := newRegistry()
	m := metrics.New(reg)

	outBoxRepo := outBoxRepository.New(log, db.GetDB())
	orderRepo := orderRepository.NewOrderRepository(log, db.GetDB(), outBoxRepo)

	relay := send.New(log, m, kafkaProducer, outBoxRepo, send.Options{
		BatchSize: cfg.Outbox.BatchSize,
		RelayOnly: cfg.Outbox.RelayOnly,
	})

	cache := cache_impl.NewOrderLRU(log, cfg.Cache.Size, cfg.Cache.TTL)

	orderCreationSvc := orderCreationService.New(log, cache, orderRepo, relay, cfg.Kafka.OrderCreatedTopic)
	orderStatusSvc := orderStatusService.New(log, cache, orderRepo, relay, cfg.Kafka.OrderUpdatedTopic)
	orderRetrievalSvc := orderRetrievalService.New(log, cache, orderRepo)

	validate := validator.New()

	router := httpapp.NewRouter(reg,
		orderCreationHandler.NewHandler(log, validate, orderCreationSvc),
		orderRetrievalHandler.NewHandler(log, orderRetrievalSvc),
		orderStatusHandler.NewHandler(log, validate, orderStatusSvc),
	)

	return &OrderApp{
		log:        log,
		cfg:        cfg,
		db:         db,
		producer:   kafkaProducer,
		relay:      relay,
		HTTPServer: httpapp.NewApp(log, cfg.HTTP, router),
	}, nil
}

// Run serves the API and relays the outbox until ctx is done or a component
// fails.
func (a *OrderApp) Run(ctx context.Context) error {
	const op = "app.OrderApp.Run"

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(a.HTTPServer.Run)
	g.Go(func() error {
		return a.relay.Run(gCtx, a.cfg.Outbox.Interval)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return a.HTTPServer.Stop(context.WithoutCancel(ctx))
	})

	a.log.Info(op, logger.String("state", "started"))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *OrderApp) Close() error {
	return closeAll(a.producer, a.db)
}
