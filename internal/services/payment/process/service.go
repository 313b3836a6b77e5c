package process

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

const (
	ReasonCancelled   = "order cancelled"
	ReasonInterrupted = "settlement interrupted"
)

type paymentStore interface {
	ByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	Transition(ctx context.Context, payment *models.Payment, from models.PaymentStatus) error
}

type cancellationChecker interface {
	IsCancelled(ctx context.Context, orderID string) (bool, error)
}

// Processor drives one payment from PENDING to a terminal status. Every
// path that moved the payment to PROCESSING ends in COMPLETED or FAILED.
type Processor struct {
	log     logger.Logger
	metrics *metrics.Metrics

	store         paymentStore
	cancellations cancellationChecker
	gateway       Gateway
	delay         time.Duration
	now           func() time.Time
}

func New(
	log logger.Logger,
	m *metrics.Metrics,
	store paymentStore,
	cancellations cancellationChecker,
	gateway Gateway,
	delay time.Duration,
) *Processor {
	return &Processor{
		log:           log,
		metrics:       m,
		store:         store,
		cancellations: cancellations,
		gateway:       gateway,
		delay:         delay,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Process settles the payment of orderID. A payment that already left
// PENDING is returned untouched.
func (p *Processor) Process(ctx context.Context, orderID string) (*models.Payment, error) {
	const op = "services.payment.process.Process"

	payment, err := p.store.ByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrPaymentNotFound) {
			p.log.Error(op, logger.String("order_id", orderID), logger.Err(internalErrors.ErrPaymentNotProvisioned))
			return nil, fmt.Errorf("%s: order %s: %w", op, orderID, internalErrors.ErrPaymentNotProvisioned)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if payment.Status != models.PaymentStatusPending {
		p.log.Debug(op, logger.String("order_id", orderID), logger.String("skipped", string(payment.Status)))
		return payment, nil
	}

	cancelled, err := p.cancellations.IsCancelled(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = payment.TransitionTo(models.PaymentStatusProcessing, p.now()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = p.store.Transition(ctx, payment, models.PaymentStatusPending); err != nil {
		if errors.Is(err, internalErrors.ErrStaleTransition) {
			p.log.Info(op, logger.String("order_id", orderID), logger.String("lost race", err.Error()))
			return p.store.ByOrderID(ctx, orderID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// From here on the payment is PROCESSING and must not be left there.

	if cancelled {
		return p.fail(ctx, payment, ReasonCancelled)
	}

	if err = sleep(ctx, p.delay); err != nil {
		return p.fail(ctx, payment, fmt.Sprintf("%s: %v", ReasonInterrupted, err))
	}

	cancelled, err = p.cancellations.IsCancelled(context.WithoutCancel(ctx), orderID)
	if err != nil {
		return p.fail(ctx, payment, fmt.Sprintf("%s: cancellation check: %v", ReasonInterrupted, err))
	}
	if cancelled {
		return p.fail(ctx, payment, ReasonCancelled)
	}

	transactionID, err := p.charge(ctx, payment)
	if err != nil {
		return p.fail(ctx, payment, err.Error())
	}

	return p.complete(ctx, payment, transactionID)
}

func (p *Processor) charge(ctx context.Context, payment *models.Payment) (transactionID string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("payment gateway panic: %v", r)
		}
	}()

	return p.gateway.Charge(ctx, payment)
}

func (p *Processor) complete(ctx context.Context, payment *models.Payment, transactionID string) (*models.Payment, error) {
	const op = "services.payment.process.complete"

	if err := payment.Complete(transactionID, p.now()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p.persistTerminal(ctx, payment, op)
}

func (p *Processor) fail(ctx context.Context, payment *models.Payment, reason string) (*models.Payment, error) {
	const op = "services.payment.process.fail"

	if err := payment.Fail(reason, p.now()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p.persistTerminal(ctx, payment, op)
}

// persistTerminal writes on a context that survives cancellation of ctx.
func (p *Processor) persistTerminal(ctx context.Context, payment *models.Payment, op string) (*models.Payment, error) {
	if err := p.store.Transition(context.WithoutCancel(ctx), payment, models.PaymentStatusProcessing); err != nil {
		p.log.Error(op, logger.String("order_id", payment.OrderID), logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.metrics.Settlements.WithLabelValues(string(payment.Status)).Inc()

	attrs := []any{
		logger.String("order_id", payment.OrderID),
		logger.String("payment_id", payment.PaymentID),
		logger.String("status", string(payment.Status)),
	}
	if payment.ErrorMessage != nil {
		attrs = append(attrs, logger.String("reason", *payment.ErrorMessage))
	}
	p.log.Info("payment settled", attrs...)

	return payment, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
