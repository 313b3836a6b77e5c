package producer

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type Message struct {
	Topic   string
	Key     string
	Payload []byte
}

// Producer publishes keyed messages and returns once every required replica
// acknowledged them. Messages with the same key land on the same partition.
type Producer struct {
	log logger.Logger

	producer sarama.SyncProducer
}

func NewConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Partitioner = sarama.NewHashPartitioner
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true

	return cfg
}

func NewProducer(log logger.Logger, brokers []string, clientID string) (*Producer, error) {
	const op = "brokers.kafka.producer.NewProducer"

	syncProducer, err := sarama.NewSyncProducer(brokers, NewConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithSyncProducer(log, syncProducer), nil
}

func NewWithSyncProducer(log logger.Logger, syncProducer sarama.SyncProducer) *Producer {
	return &Producer{
		log:      log,
		producer: syncProducer,
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte) error {
	const op = "brokers.kafka.producer.Publish"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	partition, offset, err := p.producer.SendMessage(toSarama(Message{Topic: topic, Key: key, Payload: payload}))
	if err != nil {
		p.log.Warn(op, logger.String("topic", topic), logger.String("key", key), logger.Err(err))
		return fmt.Errorf("%s: send to %s: %w", op, topic, err)
	}

	p.log.Debug(op,
		logger.String("topic", topic),
		logger.String("key", key),
		logger.Int("partition", int(partition)),
		logger.Int64("offset", offset),
	)

	return nil
}

// PublishBatch sends all messages in one round trip; a failure of any
// message fails the batch.
func (p *Producer) PublishBatch(ctx context.Context, messages []Message) error {
	const op = "brokers.kafka.producer.PublishBatch"

	if len(messages) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	saramaMessages := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, msg := range messages {
		saramaMessages = append(saramaMessages, toSarama(msg))
	}

	if err := p.producer.SendMessages(saramaMessages); err != nil {
		p.log.Warn(op, logger.Int("messages", len(messages)), logger.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

func toSarama(msg Message) *sarama.ProducerMessage {
	return &sarama.ProducerMessage{
		Topic: msg.Topic,
		Key:   sarama.StringEncoder(msg.Key),
		Value: sarama.ByteEncoder(msg.Payload),
	}
}
