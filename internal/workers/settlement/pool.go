package settlement

import (
	"context"
	"fmt"
	"sync"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/metrics"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type settler interface {
	Process(ctx context.Context, orderID string) (*models.Payment, error)
}

// Pool runs settlements on a fixed set of workers fed by a bounded queue.
// Submit never blocks the caller.
type Pool struct {
	log     logger.Logger
	metrics *metrics.Metrics
	settler settler

	workers int
	tasks   chan string

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewPool(log logger.Logger, m *metrics.Metrics, settler settler, workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	return &Pool{
		log:     log,
		metrics: m,
		settler: settler,
		workers: workers,
		tasks:   make(chan string, queueSize),
	}
}

// Start launches the workers. Settlements run on ctx, so cancelling it
// interrupts in-flight work.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) Submit(orderID string) error {
	const op = "workers.settlement.Pool.Submit"

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return fmt.Errorf("%s: %w", op, internalErrors.ErrPoolClosed)
	}

	select {
	case p.tasks <- orderID:
		return nil
	default:
		p.metrics.SettlementRejected.Inc()
		p.log.Warn(op, logger.String("order_id", orderID), logger.Int("queue", cap(p.tasks)))
		return fmt.Errorf("%s: order %s: %w", op, orderID, internalErrors.ErrPoolSaturated)
	}
}

// Stop refuses new work, lets the workers drain what is queued and waits for
// them.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	const op = "workers.settlement.Pool.worker"

	defer p.wg.Done()

	for orderID := range p.tasks {
		p.settle(ctx, id, orderID)
	}

	p.log.Debug(op, logger.Int("worker", id), logger.String("state", "stopped"))
}

func (p *Pool) settle(ctx context.Context, id int, orderID string) {
	const op = "workers.settlement.Pool.settle"

	defer func() {
		if r := recover(); r != nil {
			p.log.Error(op, logger.Int("worker", id), logger.String("order_id", orderID), logger.Any("panic", r))
		}
	}()

	payment, err := p.settler.Process(ctx, orderID)
	if err != nil {
		p.log.Error(op, logger.Int("worker", id), logger.String("order_id", orderID), logger.Err(err))
		return
	}

	p.log.Debug(op, logger.String("order_id", orderID), logger.String("status", string(payment.Status)))
}
