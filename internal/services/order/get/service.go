package get

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

const MaxPageSize = 100

type orderGetter interface {
	Order(ctx context.Context, orderID string) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter, page, size int) ([]models.Order, int, error)
}

type orderCache interface {
	Get(key string) (value *models.Order, ok bool)
	Add(key string, value *models.Order) (evicted bool)
}

type OrderRetrievalService struct {
	log   logger.Logger
	cache orderCache

	orderGetter orderGetter
}

func New(
	log logger.Logger,
	cache orderCache,
	orderGetter orderGetter,
) *OrderRetrievalService {
	return &OrderRetrievalService{
		log:         log,
		cache:       cache,
		orderGetter: orderGetter,
	}
}

func (os *OrderRetrievalService) OrderByID(ctx context.Context, orderID string) (*models.Order, error) {
	const op = "services.order.get.OrderByID"

	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrEmptyOrderID)
	}

	if order, ok := os.cache.Get(orderID); ok {
		os.log.DebugContext(ctx, op, logger.String("cache", "hit"), logger.String("order_id", orderID))
		return order, nil
	}

	order, err := os.orderGetter.Order(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.cache.Add(orderID, order)

	return order, nil
}

// ListOrders returns the zero-indexed page of orders matching filter. The
// store is always consulted so the total count stays exact.
func (os *OrderRetrievalService) ListOrders(ctx context.Context, filter models.OrderFilter, page, size int) (*models.OrderPage, error) {
	const op = "services.order.get.ListOrders"

	if page < 0 {
		return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrInvalidPage)
	}
	if size < 1 || size > MaxPageSize {
		return nil, fmt.Errorf("%s: %w: %d not in [1, %d]", op, internalErrors.ErrInvalidPageSize, size, MaxPageSize)
	}
	// the store offset is page*size
	if page > math.MaxInt/size {
		return nil, fmt.Errorf("%s: %w: %d overflows the offset", op, internalErrors.ErrInvalidPage, page)
	}

	orders, total, err := os.orderGetter.List(ctx, filter, page, size)
	if err != nil {
		os.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	os.log.DebugContext(ctx, op,
		logger.Int("page", page),
		logger.Int("returned", len(orders)),
		logger.Int("total", total),
	)

	return &models.OrderPage{
		Orders:     orders,
		TotalCount: total,
		Page:       page,
		Size:       size,
	}, nil
}
