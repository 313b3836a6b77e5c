package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is an opaque contract between the orchestrator and its
// consumers; only CANCELLED carries meaning on the payment side.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	OrderID     string          `json:"orderId" db:"order_id"`
	UserID      string          `json:"userId" db:"user_id"`
	ProductID   string          `json:"productId" db:"product_id"`
	ProductName string          `json:"productName" db:"product_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"price" db:"unit_price"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status      OrderStatus     `json:"status" db:"status"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderTotal is the only place totalAmount is derived.
func OrderTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderFilter narrows a scan; empty fields are ignored.
type OrderFilter struct {
	UserID string
	Status OrderStatus
}

type OrderPage struct {
	Orders     []Order `json:"orders"`
	TotalCount int     `json:"totalCount"`
	Page       int     `json:"page"`
	Size       int     `json:"size"`
}

type CreateOrderInput struct {
	UserID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}
