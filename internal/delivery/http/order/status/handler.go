package status

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	httpresponse "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/http"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type statusUpdater interface {
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error)
}

type Handler struct {
	log      logger.Logger
	validate *validator.Validate

	statusUpdater statusUpdater
}

func NewHandler(log logger.Logger, validate *validator.Validate, statusUpdater statusUpdater) *Handler {
	return &Handler{
		log:           log,
		validate:      validate,
		statusUpdater: statusUpdater,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Put("/orders/{orderId}/status", h.UpdateStatus)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.status.UpdateStatus"

	var request UpdateStatusRequest
	if err := httpresponse.DecodeJSON(r, h.validate, &request); err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	order, err := h.statusUpdater.UpdateStatus(r.Context(), chi.URLParam(r, "orderId"), models.OrderStatus(request.Status))
	if err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusOK, order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
