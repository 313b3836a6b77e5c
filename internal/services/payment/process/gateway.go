package process

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
)

// ErrDeclined is the gateway's refusal. Its text is stored verbatim as the
// payment's failure reason.
var ErrDeclined = errors.New("Insufficient funds or payment gateway error")

// RandomSource yields values in [0, 1).
type RandomSource interface {
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource is safe for concurrent use. A zero seed picks one from the
// clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rnd.Float64()
}

type Gateway interface {
	Charge(ctx context.Context, payment *models.Payment) (transactionID string, err error)
}

// SimulatedGateway approves a charge with the configured probability.
type SimulatedGateway struct {
	rnd                RandomSource
	successProbability float64
}

func NewSimulatedGateway(rnd RandomSource, successProbability float64) *SimulatedGateway {
	return &SimulatedGateway{
		rnd:                rnd,
		successProbability: successProbability,
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ *models.Payment) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if g.rnd.Float64() >= g.successProbability {
		return "", ErrDeclined
	}

	return NewTransactionID(), nil
}

func NewTransactionID() string {
	return "TXN-" + uuid.NewString()[:8]
}
