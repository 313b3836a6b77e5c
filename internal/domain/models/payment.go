package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

const DefaultPaymentMethod = "AUTO"

// MaxErrorMessageLen bounds the stored failure reason.
const MaxErrorMessageLen = 1000

var paymentTransitions = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentStatusPending: {
		PaymentStatusProcessing: true,
	},
	PaymentStatusProcessing: {
		PaymentStatusCompleted: true,
		PaymentStatusFailed:    true,
	},
	PaymentStatusCompleted: {},
	PaymentStatusFailed:    {},
}

func CanTransition(from, to PaymentStatus) bool {
	return paymentTransitions[from][to]
}

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type Payment struct {
	PaymentID     string          `json:"paymentId" db:"payment_id"`
	OrderID       string          `json:"orderId" db:"order_id"`
	UserID        string          `json:"userId" db:"user_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        PaymentStatus   `json:"status" db:"status"`
	PaymentMethod string          `json:"paymentMethod" db:"payment_method"`
	TransactionID *string         `json:"transactionId,omitempty" db:"transaction_id"`
	ErrorMessage  *string         `json:"errorMessage,omitempty" db:"error_message"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// TransitionTo moves the payment along the state machine and stamps
// updatedAt. Terminal states accept no transition.
func (p *Payment) TransitionTo(to PaymentStatus, at time.Time) error {
	if !CanTransition(p.Status, to) {
		return fmt.Errorf("%w: %s -> %s", internalErrors.ErrInvalidTransition, p.Status, to)
	}

	p.Status = to
	p.UpdatedAt = at

	return nil
}

func (p *Payment) Complete(transactionID string, at time.Time) error {
	if err := p.TransitionTo(PaymentStatusCompleted, at); err != nil {
		return err
	}

	p.TransactionID = &transactionID
	p.ErrorMessage = nil

	return nil
}

func (p *Payment) Fail(reason string, at time.Time) error {
	if err := p.TransitionTo(PaymentStatusFailed, at); err != nil {
		return err
	}

	if r := []rune(reason); len(r) > MaxErrorMessageLen {
		reason = string(r[:MaxErrorMessageLen])
	}

	p.ErrorMessage = &reason
	p.TransactionID = nil

	return nil
}

type PaymentStats struct {
	Total                int64           `json:"totalPayments" db:"total"`
	Completed            int64           `json:"completed" db:"completed"`
	Failed               int64           `json:"failed" db:"failed"`
	Pending              int64           `json:"pending" db:"pending"`
	Processing           int64           `json:"processing" db:"processing"`
	TotalAmountProcessed decimal.Decimal `json:"totalAmountProcessed" db:"total_amount_processed"`
	SuccessRate          float64         `json:"successRate" db:"-"`
}

// SuccessRatePercent is completed/total*100, or 0 for an empty set.
func SuccessRatePercent(completed, total int64) float64 {
	if total == 0 {
		return 0
	}

	return float64(completed) / float64(total) * 100
}
