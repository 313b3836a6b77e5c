package create

import (
	"github.com/shopspring/decimal"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
)

type CreateOrderRequest struct {
	UserID      string           `json:"userId" validate:"required,max=255"`
	ProductID   string           `json:"productId" validate:"required,max=255"`
	ProductName string           `json:"productName" validate:"max=255"`
	Quantity    int              `json:"quantity" validate:"gt=0"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
}

func (req *CreateOrderRequest) toInput() models.CreateOrderInput {
	return models.CreateOrderInput{
		UserID:      req.UserID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		UnitPrice:   *req.Price,
	}
}
