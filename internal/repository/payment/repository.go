package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

const uniqueViolation = "23505"

const paymentColumns = `payment_id, order_id, user_id, amount, status, payment_method, transaction_id, error_message, created_at, updated_at`

type Repository struct {
	log logger.Logger
	db  *sqlx.DB
}

func NewPaymentRepository(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{
		log: log,
		db:  db,
	}
}

// Create reports ErrConflict when a payment for the order already exists.
func (pr *Repository) Create(ctx context.Context, payment *models.Payment) error {
	const op = "repository.payment.Create"

	const query = `INSERT INTO "payments" (` + paymentColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := pr.db.ExecContext(ctx, query,
		payment.PaymentID, payment.OrderID, payment.UserID, payment.Amount, payment.Status,
		payment.PaymentMethod, payment.TransactionID, payment.ErrorMessage, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("%s: order %s: %w", op, payment.OrderID, internalErrors.ErrConflict)
		}

		pr.log.Error(op, logger.String("order_id", payment.OrderID), logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

func (pr *Repository) ByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	const op = "repository.payment.ByOrderID"

	const query = `SELECT ` + paymentColumns + ` FROM "payments" WHERE order_id = $1`

	var payment models.Payment
	if err := pr.db.GetContext(ctx, &payment, query, orderID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, internalErrors.ErrPaymentNotFound)
		}
		pr.log.Error(op, logger.String("order_id", orderID), logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return &payment, nil
}

func (pr *Repository) ExistsByOrderID(ctx context.Context, orderID string) (bool, error) {
	const op = "repository.payment.ExistsByOrderID"

	var exists bool
	if err := pr.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM "payments" WHERE order_id = $1)`, orderID); err != nil {
		pr.log.Error(op, logger.String("order_id", orderID), logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return exists, nil
}

func (pr *Repository) ByUserID(ctx context.Context, userID string) ([]models.Payment, error) {
	const op = "repository.payment.ByUserID"

	const query = `SELECT ` + paymentColumns + ` FROM "payments" WHERE user_id = $1 ORDER BY created_at DESC, payment_id`

	payments := make([]models.Payment, 0)
	if err := pr.db.SelectContext(ctx, &payments, query, userID); err != nil {
		pr.log.Error(op, logger.String("user_id", userID), logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return payments, nil
}

func (pr *Repository) All(ctx context.Context) ([]models.Payment, error) {
	const op = "repository.payment.All"

	const query = `SELECT ` + paymentColumns + ` FROM "payments" ORDER BY created_at DESC, payment_id`

	payments := make([]models.Payment, 0)
	if err := pr.db.SelectContext(ctx, &payments, query); err != nil {
		pr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return payments, nil
}

// Transition persists payment's current state only if the stored status is
// still from. A concurrent writer that got there first yields
// ErrStaleTransition and nothing is written.
func (pr *Repository) Transition(ctx context.Context, payment *models.Payment, from models.PaymentStatus) error {
	const op = "repository.payment.Transition"

	if !models.CanTransition(from, payment.Status) {
		return fmt.Errorf("%s: %w: %s -> %s", op, internalErrors.ErrInvalidTransition, from, payment.Status)
	}

	const query = `
		UPDATE "payments"
			SET status = $1, transaction_id = $2, error_message = $3, updated_at = $4
			WHERE order_id = $5 AND status = $6
	`

	res, err := pr.db.ExecContext(ctx, query,
		payment.Status, payment.TransactionID, payment.ErrorMessage, payment.UpdatedAt, payment.OrderID, from,
	)
	if err != nil {
		pr.log.Error(op, logger.String("order_id", payment.OrderID), logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}

	if affected == 0 {
		return fmt.Errorf("%s: order %s %s -> %s: %w", op, payment.OrderID, from, payment.Status, internalErrors.ErrStaleTransition)
	}

	return nil
}

func (pr *Repository) Stats(ctx context.Context) (*models.PaymentStats, error) {
	const op = "repository.payment.Stats"

	const query = `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed,
			COUNT(*) FILTER (WHERE status = 'FAILED') AS failed,
			COUNT(*) FILTER (WHERE status = 'PENDING') AS pending,
			COUNT(*) FILTER (WHERE status = 'PROCESSING') AS processing,
			COALESCE(SUM(amount) FILTER (WHERE status = 'COMPLETED'), 0) AS total_amount_processed
		FROM "payments"
	`

	var stats models.PaymentStats
	if err := pr.db.GetContext(ctx, &stats, query); err != nil {
		pr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	stats.SuccessRate = models.SuccessRatePercent(stats.Completed, stats.Total)

	return &stats, nil
}

// Stale lists payments sitting in status since before olderThan, oldest
// first.
func (pr *Repository) Stale(ctx context.Context, status models.PaymentStatus, olderThan time.Time, limit int) ([]models.Payment, error) {
	const op = "repository.payment.Stale"

	const query = `SELECT ` + paymentColumns + ` FROM "payments" WHERE status = $1 AND updated_at < $2 ORDER BY updated_at LIMIT $3`

	payments := make([]models.Payment, 0)
	if err := pr.db.SelectContext(ctx, &payments, query, status, olderThan, limit); err != nil {
		pr.log.Error(op, logger.Err(err))
		return nil, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return payments, nil
}

// MarkCancelled records that the order was cancelled. The mark may precede
// the payment row since the two events travel on different topics.
func (pr *Repository) MarkCancelled(ctx context.Context, orderID string, at time.Time) error {
	const op = "repository.payment.MarkCancelled"

	const query = `INSERT INTO "payment_cancellations" (order_id, cancelled_at) VALUES ($1, $2) ON CONFLICT (order_id) DO NOTHING`

	if _, err := pr.db.ExecContext(ctx, query, orderID, at); err != nil {
		pr.log.Error(op, logger.String("order_id", orderID), logger.Err(err))
		return fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return nil
}

func (pr *Repository) IsCancelled(ctx context.Context, orderID string) (bool, error) {
	const op = "repository.payment.IsCancelled"

	var cancelled bool
	if err := pr.db.GetContext(ctx, &cancelled, `SELECT EXISTS (SELECT 1 FROM "payment_cancellations" WHERE order_id = $1)`, orderID); err != nil {
		pr.log.Error(op, logger.String("order_id", orderID), logger.Err(err))
		return false, fmt.Errorf("%s: execute statement: %w", op, err)
	}

	return cancelled, nil
}
