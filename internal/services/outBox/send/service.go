package send

import (
	"context"
	"fmt"
	"time"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type outBoxProcessor interface {
	ProcessBatch(
		ctx context.Context,
		limit int,
		publish func(ctx context.Context, messages []models.OutboxMessage) error,
	) (int, error)
	ProcessAggregate(
		ctx context.Context,
		aggregateID string,
		publish func(ctx context.Context, messages []models.OutboxMessage) error,
	) (int, error)
}

type messagePublisher interface {
	PublishBatch(ctx context.Context, messages []producer.Message) error
}

type Options struct {
	BatchSize int
	// RelayOnly turns Dispatch into a no-op.
	RelayOnly bool
}

// Service moves committed outbox rows onto the event log.
type Service struct {
	log       logger.Logger
	metrics   *metrics.Metrics
	publisher messagePublisher
	outBox    outBoxProcessor
	opts      Options
}

func New(
	log logger.Logger,
	m *metrics.Metrics,
	publisher messagePublisher,
	outBox outBoxProcessor,
	opts Options,
) *Service {
	return &Service{
		log:       log,
		metrics:   m,
		publisher: publisher,
		outBox:    outBox,
		opts:      opts,
	}
}

// Send publishes one batch of unsent rows and returns how many left the
// outbox.
func (s *Service) Send(ctx context.Context) (int, error) {
	const op = "services.outBox.send.Send"

	n, err := s.outBox.ProcessBatch(ctx, s.opts.BatchSize, s.publish)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if n > 0 {
		s.metrics.OutboxPublished.Add(float64(n))
		s.log.Info(op, logger.Int("published", n))
	}

	return n, nil
}

// Drain sends batches until one comes back short and returns the total.
func (s *Service) Drain(ctx context.Context) (int, error) {
	const op = "services.outBox.send.Drain"

	var total int
	for {
		n, err := s.Send(ctx)
		total += n
		if err != nil {
			return total, fmt.Errorf("%s: %w", op, err)
		}

		if n < s.opts.BatchSize {
			return total, nil
		}
	}
}

// Run drains the outbox every interval until ctx is done. A full batch is
// followed immediately by the next one.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	const op = "services.outBox.send.Run"

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := s.Send(ctx)
		if err != nil {
			s.log.Warn(op, logger.Err(err))
		}

		if err == nil && n == s.opts.BatchSize {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Dispatch publishes a freshly committed row straight away, together with
// any older unsent rows of the same aggregate, oldest first. On failure the
// rows stay unsent and the relay picks them up later.
func (s *Service) Dispatch(ctx context.Context, msg *models.OutboxMessage) {
	const op = "services.outBox.send.Dispatch"

	if s.opts.RelayOnly || msg == nil {
		return
	}

	n, err := s.outBox.ProcessAggregate(ctx, msg.AggregateID, s.publish)
	if err != nil {
		s.log.Warn(op, logger.String("event_id", msg.EventID), logger.String("left for relay", err.Error()))
		return
	}

	s.metrics.OutboxPublished.Add(float64(n))
}

func (s *Service) publish(ctx context.Context, messages []models.OutboxMessage) error {
	batch := make([]producer.Message, 0, len(messages))
	for _, msg := range messages {
		batch = append(batch, producer.Message{Topic: msg.Topic, Key: msg.Key, Payload: msg.Payload})
	}

	return s.publisher.PublishBatch(ctx, batch)
}
