package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/services/payment/process"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type paymentStore interface {
	Stale(ctx context.Context, status models.PaymentStatus, olderThan time.Time, limit int) ([]models.Payment, error)
	Transition(ctx context.Context, payment *models.Payment, from models.PaymentStatus) error
}

type settlementSubmitter interface {
	Submit(orderID string) error
}

type Options struct {
	Interval          time.Duration
	PendingAfter      time.Duration
	ProcessingTimeout time.Duration
	Batch             int
}

type Result struct {
	Resubmitted int
	Failed      int
}

// Service repairs payments a crash or a dropped submission left behind:
// PENDING ones go back to the pool, PROCESSING ones past the timeout fail.
type Service struct {
	log     logger.Logger
	metrics *metrics.Metrics

	store     paymentStore
	submitter settlementSubmitter
	opts      Options
	now       func() time.Time
}

func New(log logger.Logger, m *metrics.Metrics, store paymentStore, submitter settlementSubmitter, opts Options) *Service {
	return &Service{
		log:       log,
		metrics:   m,
		store:     store,
		submitter: submitter,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Reconcile(ctx context.Context) (Result, error) {
	const op = "services.payment.reconcile.Reconcile"

	var res Result

	now := s.now()

	stuck, err := s.store.Stale(ctx, models.PaymentStatusProcessing, now.Add(-s.opts.ProcessingTimeout), s.opts.Batch)
	if err != nil {
		return res, fmt.Errorf("%s: processing: %w", op, err)
	}

	for i := range stuck {
		payment := &stuck[i]

		if err = payment.Fail(process.ReasonInterrupted+": processing timed out", now); err != nil {
			return res, fmt.Errorf("%s: %w", op, err)
		}

		if err = s.store.Transition(ctx, payment, models.PaymentStatusProcessing); err != nil {
			if errors.Is(err, internalErrors.ErrStaleTransition) {
				continue
			}
			return res, fmt.Errorf("%s: %w", op, err)
		}

		s.metrics.Settlements.WithLabelValues(string(models.PaymentStatusFailed)).Inc()
		s.log.Warn(op, logger.String("order_id", payment.OrderID), logger.String("failed", "processing timed out"))
		res.Failed++
	}

	waiting, err := s.store.Stale(ctx, models.PaymentStatusPending, now.Add(-s.opts.PendingAfter), s.opts.Batch)
	if err != nil {
		return res, fmt.Errorf("%s: pending: %w", op, err)
	}

	for _, payment := range waiting {
		if err = s.submitter.Submit(payment.OrderID); err != nil {
			if errors.Is(err, internalErrors.ErrPoolSaturated) {
				s.log.Info(op, logger.String("deferred", "settlement queue full"))
				break
			}
			return res, fmt.Errorf("%s: %w", op, err)
		}
		res.Resubmitted++
	}

	return res, nil
}

func (s *Service) Run(ctx context.Context) error {
	const op = "services.payment.reconcile.Run"

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		res, err := s.Reconcile(ctx)
		if err != nil {
			if errors.Is(err, internalErrors.ErrPoolClosed) || ctx.Err() != nil {
				return nil
			}
			s.log.Error(op, logger.Err(err))
			continue
		}

		if res.Resubmitted > 0 || res.Failed > 0 {
			s.log.Info(op, logger.Int("resubmitted", res.Resubmitted), logger.Int("failed", res.Failed))
		}
	}
}
