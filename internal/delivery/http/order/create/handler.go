package create

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	httpresponse "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/http"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type orderCreator interface {
	Create(ctx context.Context, input models.CreateOrderInput) (*models.Order, error)
}

type Handler struct {
	log      logger.Logger
	validate *validator.Validate

	orderCreator orderCreator
}

func NewHandler(log logger.Logger, validate *validator.Validate, orderCreator orderCreator) *Handler {
	return &Handler{
		log:          log,
		validate:     validate,
		orderCreator: orderCreator,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/orders", h.Create)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.create.Create"

	var request CreateOrderRequest
	if err := httpresponse.DecodeJSON(r, h.validate, &request); err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	order, err := h.orderCreator.Create(r.Context(), request.toInput())
	if err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusCreated, order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
