package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type paymentStore interface {
	ExistsByOrderID(ctx context.Context, orderID string) (bool, error)
	ByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	Create(ctx context.Context, payment *models.Payment) error
}

type cancellationMarker interface {
	MarkCancelled(ctx context.Context, orderID string, at time.Time) error
}

type Service struct {
	log logger.Logger

	store         paymentStore
	cancellations cancellationMarker
	now           func() time.Time
}

func New(log logger.Logger, store paymentStore, cancellations cancellationMarker) *Service {
	return &Service{
		log:           log,
		store:         store,
		cancellations: cancellations,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Provision returns the payment of the event's order, creating a PENDING
// one on first delivery. Redeliveries and concurrent consumers converge on
// the single row the unique order_id allows.
func (s *Service) Provision(ctx context.Context, event models.OrderEvent) (*models.Payment, error) {
	const op = "services.payment.provision.Provision"

	if event.OrderID == "" {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrEventMalformed)
	}

	exists, err := s.store.ExistsByOrderID(ctx, event.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if exists {
		s.log.Info(op, logger.String("order_id", event.OrderID), logger.String("payment", "already provisioned"))
		return s.existing(ctx, event.OrderID, op)
	}

	now := s.now()
	payment := &models.Payment{
		PaymentID:     uuid.NewString(),
		OrderID:       event.OrderID,
		UserID:        event.UserID,
		Amount:        event.TotalAmount,
		Status:        models.PaymentStatusPending,
		PaymentMethod: models.DefaultPaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.store.Create(ctx, payment); err != nil {
		if errors.Is(err, internalErrors.ErrConflict) {
			s.log.Info(op, logger.String("order_id", event.OrderID), logger.String("payment", "created concurrently"))
			return s.existing(ctx, event.OrderID, op)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info(op,
		logger.String("order_id", payment.OrderID),
		logger.String("payment_id", payment.PaymentID),
		logger.String("amount", payment.Amount.String()),
	)

	return payment, nil
}

func (s *Service) existing(ctx context.Context, orderID, op string) (*models.Payment, error) {
	payment, err := s.store.ByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: read existing: %w", op, err)
	}

	return payment, nil
}

// MarkCancelled records the cancellation whether or not the payment exists
// yet.
func (s *Service) MarkCancelled(ctx context.Context, orderID string) error {
	const op = "services.payment.provision.MarkCancelled"

	if orderID == "" {
		return fmt.Errorf("%s: %w", op, internalErrors.ErrEventMalformed)
	}

	if err := s.cancellations.MarkCancelled(ctx, orderID, s.now()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info(op, logger.String("order_id", orderID))

	return nil
}
