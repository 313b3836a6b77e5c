package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type outBoxRepository interface {
	Insert(ctx context.Context, ext sqlx.ExtContext, msg *models.OutboxMessage) error
}

type Repository struct {
	log              logger.Logger
	db               *sqlx.DB
	outBoxRepository outBoxRepository
}

func NewOrderRepository(log logger.Logger, db *sqlx.DB, outBoxRepository outBoxRepository) *Repository {
	return &Repository{
		log:              log,
		db:               db,
		outBoxRepository: outBoxRepository,
	}
}

const orderColumns = `order_id, user_id, product_id, product_name, quantity, unit_price, total_amount, status, created_at, updated_at`

// Create inserts the order and its event in one transaction.
func (or *Repository) Create(ctx context.Context, order *models.Order, msg *models.OutboxMessage) (err error) {
	const op = "repository.order.Create"

	tx, err := or.db.BeginTxx(ctx, nil)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollBackErr := tx.Rollback(); rollBackErr != nil {
				or.log.Error(op, logger.String("rollback error", rollBackErr.Error()))
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollBackErr))
			}
		}
	}()

	const orderQuery = `INSERT INTO "orders" (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err = tx.ExecContext(ctx, orderQuery,
		order.OrderID, order.UserID, order.ProductID, order.ProductName, order.Quantity,
		order.UnitPrice, order.TotalAmount, order.Status, order.CreatedAt, order.UpdatedAt,
	); err != nil {
		or.log.Error(op, logger.String("order_id", order.OrderID), logger.Err(err))
		return fmt.Errorf("%s: order execute statement: %w", op, err)
	}

	if err = or.outBoxRepository.Insert(ctx, tx, msg); err != nil {
		return fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		or.log.Error(op, logger.Err(err))
		return fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return nil
}

// UpdateStatus rewrites the status and records the event that build derives
// from the updated row. An unknown order writes nothing and reports ErrOrderNotFound.
func (or *Repository) UpdateStatus(
	ctx context.Context,
	orderID string,
	status models.OrderStatus,
	at time.Time,
	build func(order *models.Order) (*models.OutboxMessage, error),
) (updated *models.Order, msg *models.OutboxMessage, err error) {
	const op = "repository.order.UpdateStatus"

	tx, err := or.db.BeginTxx(ctx, nil)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	// updated_at strictly grows in commit order even when the caller's clock
	// was read before a concurrent writer's.
	const updateQuery = `
		UPDATE "orders"
			SET status = $1, updated_at = GREATEST($2, updated_at + INTERVAL '1 microsecond')
			WHERE order_id = $3
			RETURNING ` + orderColumns

	var order models.Order
	if err = tx.QueryRowxContext(ctx, updateQuery, status, at, orderID).StructScan(&order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("%s: %w", op, internalErrors.ErrOrderNotFound)
		}
		or.log.Error(op, logger.String("order_id", orderID), logger.Err(err))
		return nil, nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	if msg, err = build(&order); err != nil {
		return nil, nil, fmt.Errorf("%s: build event: %w", op, err)
	}

	if err = or.outBoxRepository.Insert(ctx, tx, msg); err != nil {
		return nil, nil, fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return &order, msg, nil
}

func (or *Repository) Order(ctx context.Context, orderID string) (*models.Order, error) {
	const op = "repository.order.Order"

	const orderQuery = `SELECT ` + orderColumns + ` FROM "orders" WHERE order_id = $1`

	var order models.Order
	if err := or.db.GetContext(ctx, &order, orderQuery, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrOrderNotFound)
		}
		or.log.Error(op, logger.String("order_id", orderID), logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &order, nil
}

// List returns one zero-indexed page of the filtered orders, newest first,
// together with the size of the whole filtered set.
func (or *Repository) List(ctx context.Context, filter models.OrderFilter, page, size int) ([]models.Order, int, error) {
	const op = "repository.order.List"

	var (
		conditions []string
		args       []any
	)

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := or.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM "orders"`+where, args...); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	pageQuery := fmt.Sprintf(`SELECT %s FROM "orders"%s ORDER BY created_at DESC, order_id LIMIT $%d OFFSET $%d`,
		orderColumns, where, len(args)+1, len(args)+2)

	orders := make([]models.Order, 0, size)
	if err := or.db.SelectContext(ctx, &orders, pageQuery, append(args, size, page*size)...); err != nil {
		or.log.Error(op, logger.Err(err))
		return nil, 0, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return orders, total, nil
}
