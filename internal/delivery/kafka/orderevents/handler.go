package orderevents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/brokers/kafka/consumer"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type paymentProvisioner interface {
	Provision(ctx context.Context, event models.OrderEvent) (*models.Payment, error)
	MarkCancelled(ctx context.Context, orderID string) error
}

type settlementSubmitter interface {
	Submit(orderID string) error
}

type deadLetterPublisher interface {
	Publish(ctx context.Context, topic, key string, payload []byte) error
}

type Options struct {
	DeadLetterTopic string
	MaxRetries      int
	BackoffBase     time.Duration
	BackoffMax      time.Duration
}

// Handler turns order events into payment work. It is the payment side's
// only entry point from the event log.
type Handler struct {
	log     logger.Logger
	metrics *metrics.Metrics

	provisioner paymentProvisioner
	submitter   settlementSubmitter
	deadLetters deadLetterPublisher
	opts        Options
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewHandler(
	log logger.Logger,
	m *metrics.Metrics,
	provisioner paymentProvisioner,
	submitter settlementSubmitter,
	deadLetters deadLetterPublisher,
	opts Options,
) *Handler {
	return &Handler{
		log:         log,
		metrics:     m,
		provisioner: provisioner,
		submitter:   submitter,
		deadLetters: deadLetters,
		opts:        opts,
		sleep:       sleepCtx,
	}
}

// Handle is a consumer.Handler. A nil return commits the offset: either the
// event took effect or it was parked on the dead-letter topic.
func (h *Handler) Handle(ctx context.Context, msg consumer.Message) error {
	const op = "delivery.kafka.orderevents.Handle"

	event, err := decode(msg.Payload)
	if err != nil {
		return h.deadLetter(ctx, msg, err)
	}

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			if err := h.sleep(ctx, h.backoff(attempt)); err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
		}

		err = h.dispatch(ctx, event)
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, internalErrors.ErrPoolClosed), ctx.Err() != nil:
			// shutting down; leave the offset for the next owner
			return fmt.Errorf("%s: %w", op, err)
		case errors.Is(err, internalErrors.ErrValidation):
			return h.deadLetter(ctx, msg, err)
		case attempt >= h.opts.MaxRetries:
			return h.deadLetter(ctx, msg, err)
		}

		h.log.Warn(op,
			logger.String("order_id", event.OrderID),
			logger.Int("attempt", attempt+1),
			logger.Err(err),
		)
	}
}

func (h *Handler) dispatch(ctx context.Context, event models.OrderEvent) error {
	const op = "delivery.kafka.orderevents.dispatch"

	switch {
	case event.EventType == models.EventCreated:
		payment, err := h.provisioner.Provision(ctx, event)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		// a redelivered event re-submits a payment whose first submission
		// was lost; the processor ignores anything past PENDING
		if payment.Status != models.PaymentStatusPending {
			return nil
		}

		return h.submitter.Submit(payment.OrderID)
	case event.IsCancellation():
		return h.provisioner.MarkCancelled(ctx, event.OrderID)
	case event.EventType == models.EventUpdated:
		h.log.Info(op, logger.String("order_id", event.OrderID), logger.String("status", string(event.Status)))
		return nil
	default:
		return fmt.Errorf("%s: %q: %w", op, event.EventType, internalErrors.ErrUnknownEventType)
	}
}

func (h *Handler) deadLetter(ctx context.Context, msg consumer.Message, cause error) error {
	const op = "delivery.kafka.orderevents.deadLetter"

	if err := h.deadLetters.Publish(ctx, h.opts.DeadLetterTopic, msg.Key, msg.Payload); err != nil {
		h.log.Error(op, logger.String("topic", msg.Topic), logger.Int64("offset", msg.Offset), logger.Err(err))
		return fmt.Errorf("%s: %w", op, errors.Join(cause, err))
	}

	h.metrics.DeadLetters.WithLabelValues(msg.Topic).Inc()
	h.log.Error(op,
		logger.String("topic", msg.Topic),
		logger.String("key", msg.Key),
		logger.Int64("offset", msg.Offset),
		logger.String("cause", cause.Error()),
	)

	return nil
}

// backoff is base * 2^(attempt-1), capped at BackoffMax.
func (h *Handler) backoff(attempt int) time.Duration {
	d := h.opts.BackoffBase
	for i := 1; i < attempt; i++ {
		d *= 2
		if h.opts.BackoffMax > 0 && d >= h.opts.BackoffMax {
			return h.opts.BackoffMax
		}
	}

	if h.opts.BackoffMax > 0 && d > h.opts.BackoffMax {
		return h.opts.BackoffMax
	}

	return d
}

func decode(payload []byte) (models.OrderEvent, error) {
	var event models.OrderEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return models.OrderEvent{}, fmt.Errorf("%w: %v", internalErrors.ErrEventMalformed, err)
	}

	if event.OrderID == "" {
		return models.OrderEvent{}, fmt.Errorf("%w: missing orderId", internalErrors.ErrEventMalformed)
	}

	return event, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
