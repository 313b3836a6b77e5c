package app

import (
	"context"
	"fmt"
	"time"

	httpapp "github.com/tumbleweedd/two_services_system/orderflow/internal/app/http"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/config"
	paymentRetrievalHandler "github.com/tumbleweedd/two_services_system/orderflow/internal/delivery/http/payment/get"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/delivery/kafka/orderevents"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	paymentRepository "github.com/tumbleweedd/two_services_system/orderflow/internal/repository/payment"
	paymentRetrievalService "github.com/tumbleweedd/two_services_system/orderflow/internal/services/payment/get"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/services/payment/process"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/services/payment/provision"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/services/payment/reconcile"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/workers/settlement"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/databases/postgres"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// PaymentApp is the payment side process: the order event consumer, the
// settlement pool, the reconciler and the payment API.
type PaymentApp struct {
	log logger.Logger
	cfg *config.Config

	db          *postgres.PgDB
	consumer    *consumer.Consumer
	deadLetters *producer.Producer
	handler     *orderevents.Handler
	pool        *settlement.Pool
	reconciler  *reconcile.Service
	HTTPServer  *httpapp.App
}

func NewPaymentApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*PaymentApp, error) {
	db, err := setupDatabase(ctx, log, &cfg.Postgres)
	if err != nil {
		return nil, err
	}

	deadLetters, err := producer.NewProducer(log, cfg.Kafka.BrokerList, cfg.Kafka.ClientID)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create dead-letter producer: %w", err)
	}

	kafkaConsumer, err := consumer.NewConsumer(log, cfg.Kafka.BrokerList, cfg.Kafka.ConsumerGroup, cfg.Kafka.ClientID)
	if err != nil {
		_ = closeAll(deadLetters, db)
		return nil, fmt.Errorf("failed to create kafka consumer: %w", err)
	}

	reg := newRegistry()
	m := metrics.New(reg)

	paymentRepo := paymentRepository.NewPaymentRepository(log, db.GetDB())

	gateway := process.NewSimulatedGateway(process.NewRandomSource(cfg.Payment.Seed), cfg.Payment.SuccessProbability)
	processor := process.New(log, m, paymentRepo, paymentRepo, gateway, cfg.Payment.SettlementDelay)
	pool := settlement.NewPool(log, m, processor, cfg.Payment.Workers, cfg.Payment.QueueSize)

	provisioner := provision.New(log, paymentRepo, paymentRepo)

	handler := orderevents.NewHandler(log, m, provisioner, pool, deadLetters, orderevents.Options{
		DeadLetterTopic: cfg.Kafka.DeadLetterTopic,
		MaxRetries:      cfg.Consumer.MaxRetries,
		BackoffBase:     cfg.Consumer.BackoffBase,
		BackoffMax:      cfg.Consumer.BackoffMax,
	})

	reconciler := reconcile.New(log, m, paymentRepo, pool, reconcile.Options{
		Interval:          cfg.Payment.ReconcileInterval,
		PendingAfter:      cfg.Payment.PendingAfter,
		ProcessingTimeout: cfg.Payment.ProcessingTimeout,
		Batch:             cfg.Payment.ReconcileBatch,
	})

	paymentRetrievalSvc := paymentRetrievalService.New(log, paymentRepo)

	router := httpapp.NewRouter(reg, paymentRetrievalHandler.NewHandler(log, paymentRetrievalSvc))

	return &PaymentApp{
		log:         log,
		cfg:         cfg,
		db:          db,
		consumer:    kafkaConsumer,
		deadLetters: deadLetters,
		handler:     handler,
		pool:        pool,
		reconciler:  reconciler,
		HTTPServer:  httpapp.NewApp(log, cfg.HTTP, router),
	}, nil
}

// Run consumes order events and serves the API until ctx is done or a
// component fails. Settlements outlive ctx by at most DrainTimeout.
func (a *PaymentApp) Run(ctx context.Context) error {
	const op = "app.PaymentApp.Run"

	workCtx, cancelWork := context.WithCancel(context.WithoutCancel(ctx))
	defer cancelWork()

	a.pool.Start(workCtx)

	topics := []string{a.cfg.Kafka.OrderCreatedTopic, a.cfg.Kafka.OrderUpdatedTopic}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(a.HTTPServer.Run)
	g.Go(func() error {
		return a.consumer.Subscribe(gCtx, topics, a.handler.Handle)
	})
	g.Go(func() error {
		return a.reconciler.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		return a.HTTPServer.Stop(context.WithoutCancel(ctx))
	})

	a.log.Info(op, logger.String("state", "started"), logger.Any("topics", topics))

	err := g.Wait()

	drainPool(a.pool, cancelWork, a.cfg.Payment.DrainTimeout)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *PaymentApp) Close() error {
	return closeAll(a.consumer, a.deadLetters, a.db)
}

type stopper interface {
	Stop()
}

// drainPool stops the pool and, if the queue is not empty after timeout,
// cancels in-flight settlements so they fail instead of hanging.
func drainPool(pool stopper, cancelWork context.CancelFunc, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		cancelWork()
		<-done
	}
}
