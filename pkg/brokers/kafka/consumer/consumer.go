package consumer

import (
	"context"
	"errors"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type Message struct {
	Topic     string
	Key       string
	Payload   []byte
	Partition int32
	Offset    int64
}

// Handler is called once per delivered message. Returning nil commits the
// offset; an error stops the claim without committing so the message is
// delivered again after the rebalance.
type Handler func(ctx context.Context, msg Message) error

type Consumer struct {
	log   logger.Logger
	group sarama.ConsumerGroup
}

func NewConfig(clientID string) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Offsets.AutoCommit.Enable = true
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRange()}

	return cfg
}

func NewConsumer(log logger.Logger, brokers []string, groupID, clientID string) (*Consumer, error) {
	const op = "brokers.kafka.consumer.NewConsumer"

	group, err := sarama.NewConsumerGroup(brokers, groupID, NewConfig(clientID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithGroup(log, group), nil
}

func NewWithGroup(log logger.Logger, group sarama.ConsumerGroup) *Consumer {
	return &Consumer{
		log:   log,
		group: group,
	}
}

// Subscribe blocks until ctx is done, rejoining the group after every
// rebalance.
func (c *Consumer) Subscribe(ctx context.Context, topics []string, handler Handler) error {
	const op = "brokers.kafka.consumer.Subscribe"

	go func() {
		for err := range c.group.Errors() {
			c.log.Warn(op, logger.Err(err))
		}
	}()

	gh := &groupHandler{log: c.log, handler: handler}

	for {
		if err := c.group.Consume(ctx, topics, gh); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			c.log.Error(op, logger.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type groupHandler struct {
	log     logger.Logger
	handler Handler
}

func (h *groupHandler) Setup(session sarama.ConsumerGroupSession) error {
	h.log.Info("consumer group session started", logger.Any("claims", session.Claims()))
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	const op = "brokers.kafka.consumer.ConsumeClaim"

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}

			err := h.handler(session.Context(), Message{
				Topic:     msg.Topic,
				Key:       string(msg.Key),
				Payload:   msg.Value,
				Partition: msg.Partition,
				Offset:    msg.Offset,
			})
			if err != nil {
				h.log.Error(op,
					logger.String("topic", msg.Topic),
					logger.Int64("offset", msg.Offset),
					logger.Err(err),
				)
				return fmt.Errorf("%s: %w", op, err)
			}

			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
