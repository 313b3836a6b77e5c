package outBox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type Repository struct {
	db *sqlx.DB

	log logger.Logger
}

func New(log logger.Logger, db *sqlx.DB) *Repository {
	return &Repository{db: db, log: log}
}

// Insert writes msg through ext, which is the caller's transaction when the
// event must commit together with the row it describes.
func (or *Repository) Insert(ctx context.Context, ext sqlx.ExtContext, msg *models.OutboxMessage) error {
	const op = "repository.outBox.Insert"

	const outboxQuery = `
		INSERT INTO "outbox" (event_id, aggregate_id, event_type, topic, msg_key, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := ext.ExecContext(ctx, outboxQuery,
		msg.EventID, msg.AggregateID, msg.EventType, msg.Topic, msg.Key, string(msg.Payload), msg.CreatedAt,
	); err != nil {
		or.log.Error(op, logger.String("event_id", msg.EventID), logger.Err(err))
		return fmt.Errorf("%s: outbox insert error: %w", op, err)
	}

	return nil
}

// ProcessBatch locks up to limit unsent rows in commit order, hands them to
// publish and marks them sent in the same transaction. A row locked by a
// concurrent sender is waited for rather than skipped, so a newer event of
// the same key never overtakes an older one. When publish fails the
// transaction rolls back and the rows stay unsent.
func (or *Repository) ProcessBatch(
	ctx context.Context,
	limit int,
	publish func(ctx context.Context, messages []models.OutboxMessage) error,
) (int, error) {
	const op = "repository.outBox.ProcessBatch"

	const claimQuery = `
		SELECT event_id, aggregate_id, event_type, topic, msg_key, payload, created_at, sent_at
			FROM "outbox"
			WHERE sent_at IS NULL
			ORDER BY seq
			LIMIT $1
			FOR UPDATE
	`

	return or.process(ctx, op, publish, claimQuery, limit)
}

// ProcessAggregate publishes every unsent row of one aggregate, oldest first,
// under the same locking rules as ProcessBatch.
func (or *Repository) ProcessAggregate(
	ctx context.Context,
	aggregateID string,
	publish func(ctx context.Context, messages []models.OutboxMessage) error,
) (int, error) {
	const op = "repository.outBox.ProcessAggregate"

	const claimQuery = `
		SELECT event_id, aggregate_id, event_type, topic, msg_key, payload, created_at, sent_at
			FROM "outbox"
			WHERE aggregate_id = $1 AND sent_at IS NULL
			ORDER BY seq
			FOR UPDATE
	`

	return or.process(ctx, op, publish, claimQuery, aggregateID)
}

func (or *Repository) process(
	ctx context.Context,
	op string,
	publish func(ctx context.Context, messages []models.OutboxMessage) error,
	claimQuery string,
	args ...any,
) (n int, err error) {
	tx, err := or.db.BeginTxx(ctx, nil)
	if err != nil {
		or.log.Error(op, logger.Err(err))
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("%s: rollback transaction: %w", op, rollbackErr))
			}
		}
	}()

	var messages []models.OutboxMessage
	if err = tx.SelectContext(ctx, &messages, claimQuery, args...); err != nil {
		or.log.Error(op, logger.Err(err))
		return 0, fmt.Errorf("%s: claim: %w", op, err)
	}

	if len(messages) == 0 {
		err = tx.Commit()
		return 0, err
	}

	if err = publish(ctx, messages); err != nil {
		return 0, fmt.Errorf("%s: publish: %w", op, err)
	}

	eventIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		eventIDs = append(eventIDs, msg.EventID)
	}

	if err = markSent(ctx, tx, eventIDs, time.Now().UTC(), op); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		or.log.Error(op, logger.Err(err))
		return 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return len(messages), nil
}

func markSent(ctx context.Context, ext sqlx.ExecerContext, eventIDs []string, at time.Time, op string) error {
	const query = `UPDATE "outbox" SET sent_at = $1 WHERE event_id = ANY($2) AND sent_at IS NULL`

	if _, err := ext.ExecContext(ctx, query, at, pq.Array(eventIDs)); err != nil {
		return fmt.Errorf("%s: mark sent: %w", op, err)
	}

	return nil
}
