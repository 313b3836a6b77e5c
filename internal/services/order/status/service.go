package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type orderStatusUpdater interface {
	UpdateStatus(
		ctx context.Context,
		orderID string,
		status models.OrderStatus,
		at time.Time,
		build func(order *models.Order) (*models.OutboxMessage, error),
	) (*models.Order, *models.OutboxMessage, error)
}

type eventDispatcher interface {
	Dispatch(ctx context.Context, msg *models.OutboxMessage)
}

type orderCache interface {
	Add(key string, value *models.Order) (evicted bool)
	Remove(key string) (present bool)
}

type OrderStatusService struct {
	log   logger.Logger
	cache orderCache

	updater    orderStatusUpdater
	dispatcher eventDispatcher
	topic      string
	now        func() time.Time
}

func New(
	log logger.Logger,
	cache orderCache,
	updater orderStatusUpdater,
	dispatcher eventDispatcher,
	topic string,
) *OrderStatusService {
	return &OrderStatusService{
		log:        log,
		cache:      cache,
		updater:    updater,
		dispatcher: dispatcher,
		topic:      topic,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// UpdateStatus overwrites the order status and records an UPDATED event
// carrying the new snapshot. Status values are not interpreted here.
func (os *OrderStatusService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {
	const op = "services.order.status.UpdateStatus"

	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrEmptyOrderID)
	}
	if strings.TrimSpace(string(status)) == "" {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrEmptyStatus)
	}

	now := os.now()

	order, msg, err := os.updater.UpdateStatus(ctx, orderID, status, now, func(order *models.Order) (*models.OutboxMessage, error) {
		return models.NewOutboxMessage(os.topic, models.NewOrderEvent(order, models.EventUpdated), now)
	})
	if err != nil {
		// drop whatever we hold so the next read goes to the store
		os.cache.Remove(orderID)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.log.InfoContext(ctx, op, logger.String("order_id", orderID), logger.String("status", string(status)))

	os.dispatcher.Dispatch(ctx, msg)
	os.cache.Add(order.OrderID, order)

	return order, nil
}
