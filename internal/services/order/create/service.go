package create

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type orderCreator interface {
	Create(ctx context.Context, order *models.Order, msg *models.OutboxMessage) error
}

type eventDispatcher interface {
	Dispatch(ctx context.Context, msg *models.OutboxMessage)
}

type orderCache interface {
	Add(key string, value *models.Order) (evicted bool)
}

type OrderCreationService struct {
	log   logger.Logger
	cache orderCache

	orderCreator orderCreator
	dispatcher   eventDispatcher
	topic        string
	now          func() time.Time
}

func New(
	log logger.Logger,
	cache orderCache,
	orderCreator orderCreator,
	dispatcher eventDispatcher,
	topic string,
) *OrderCreationService {
	return &OrderCreationService{
		log:          log,
		cache:        cache,
		orderCreator: orderCreator,
		dispatcher:   dispatcher,
		topic:        topic,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a PENDING order together with its CREATED event. The event
// is published only after the commit.
func (os *OrderCreationService) Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error) {
	const op = "services.order.create.Create"

	if err := validate(input); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := os.now()
	order := &models.Order{
		OrderID:     uuid.NewString(),
		UserID:      input.UserID,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		TotalAmount: models.OrderTotal(input.Quantity, input.UnitPrice),
		Status:      models.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	msg, err := models.NewOutboxMessage(os.topic, models.NewOrderEvent(order, models.EventCreated), now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = os.orderCreator.Create(ctx, order, msg); err != nil {
		os.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.log.InfoContext(ctx, op, logger.String("order_id", order.OrderID), logger.String("user_id", order.UserID))

	os.dispatcher.Dispatch(ctx, msg)
	os.cache.Add(order.OrderID, order)

	return order, nil
}

func validate(input models.CreateOrderInput) error {
	switch {
	case strings.TrimSpace(input.UserID) == "":
		return internalErrors.ErrEmptyUserID
	case strings.TrimSpace(input.ProductID) == "":
		return internalErrors.ErrEmptyProductID
	case input.Quantity <= 0:
		return internalErrors.ErrInvalidQuantity
	case input.UnitPrice.IsNegative():
		return internalErrors.ErrNegativePrice
	}

	return nil
}
