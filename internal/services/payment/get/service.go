package get

import (
	"context"
	"fmt"
	"strings"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type paymentGetter interface {
	ByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	ByUserID(ctx context.Context, userID string) ([]models.Payment, error)
	All(ctx context.Context) ([]models.Payment, error)
	Stats(ctx context.Context) (*models.PaymentStats, error)
}

type PaymentRetrievalService struct {
	log    logger.Logger
	getter paymentGetter
}

func New(log logger.Logger, getter paymentGetter) *PaymentRetrievalService {
	return &PaymentRetrievalService{
		log:    log,
		getter: getter,
	}
}

func (ps *PaymentRetrievalService) PaymentByOrder(ctx context.Context, orderID string) (*models.Payment, error) {
	const op = "services.payment.get.PaymentByOrder"

	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrEmptyOrderID)
	}

	payment, err := ps.getter.ByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payment, nil
}

func (ps *PaymentRetrievalService) PaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	const op = "services.payment.get.PaymentsByUser"

	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrEmptyUserID)
	}

	payments, err := ps.getter.ByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

// Payments lists every payment, newest first.
func (ps *PaymentRetrievalService) Payments(ctx context.Context) ([]models.Payment, error) {
	const op = "services.payment.get.Payments"

	payments, err := ps.getter.All(ctx)
	if err != nil {
		ps.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return payments, nil
}

func (ps *PaymentRetrievalService) Stats(ctx context.Context) (*models.PaymentStats, error) {
	const op = "services.payment.get.Stats"

	stats, err := ps.getter.Stats(ctx)
	if err != nil {
		ps.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}
