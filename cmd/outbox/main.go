package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/config"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	outBoxRepository "github.com/tumbleweedd/two_services_system/orderflow/internal/repository/outBox"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/services/outBox/send"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/databases/postgres"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

// outbox publishes every unsent outbox row once and exits.
func main() {
	cfg := config.InitConfig()

	log := logger.SetupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.NewPostgresDB(ctx, log, cfg.Postgres.DSN(), postgres.Options{})
	if err != nil {
		panic(fmt.Sprintf("failed connect to db: %v", err.Error()))
	}
	defer db.Close()

	kafkaProducer, err := producer.NewProducer(log, cfg.Kafka.BrokerList, cfg.Kafka.ClientID)
	if err != nil {
		panic(fmt.Sprintf("failed to create kafka producer: %v", err.Error()))
	}
	defer kafkaProducer.Close()

	relay := send.New(log, metrics.NewNop(), kafkaProducer, outBoxRepository.New(log, db.GetDB()), send.Options{
		BatchSize: cfg.Outbox.BatchSize,
	})

	total, err := relay.Drain(ctx)
	if err != nil {
		log.Error("outbox sweep interrupted", logger.Int("published", total), logger.Err(err))
		return
	}

	log.Info("messages were successfully sent to their topics", logger.Int("published", total))
}
