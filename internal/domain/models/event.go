package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventCreated   EventType = "CREATED"
	EventUpdated   EventType = "UPDATED"
	EventCancelled EventType = "CANCELLED"
)

// OrderEvent is a snapshot of an order at commit time.
type OrderEvent struct {
	OrderID     string          `json:"orderId"`
	UserID      string          `json:"userId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	EventType   EventType       `json:"eventType"`
}

func NewOrderEvent(order *Order, eventType EventType) OrderEvent {
	return OrderEvent{
		OrderID:     order.OrderID,
		UserID:      order.UserID,
		ProductID:   order.ProductID,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		Price:       order.UnitPrice,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		EventType:   eventType,
	}
}

func (e OrderEvent) IsCancellation() bool {
	return e.EventType == EventCancelled || e.Status == OrderStatusCancelled
}
