package get

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	httpresponse "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/http"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type orderGetter interface {
	OrderByID(ctx context.Context, orderID string) (*models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter, page, size int) (*models.OrderPage, error)
}

type Handler struct {
	log logger.Logger

	orderGetter orderGetter
}

func NewHandler(log logger.Logger, orderGetter orderGetter) *Handler {
	return &Handler{
		log:         log,
		orderGetter: orderGetter,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{orderId}", h.OrderByID)
}

func (h *Handler) OrderByID(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.OrderByID"

	order, err := h.orderGetter.OrderByID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusOK, order); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.order.get.ListOrders"

	request, err := parseListOrdersRequest(r.URL.Query())
	if err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	page, err := h.orderGetter.ListOrders(r.Context(), request.Filter, request.Page, request.Size)
	if err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	if page.Orders == nil {
		page.Orders = []models.Order{}
	}

	if err = httpresponse.WriteJSON(w, http.StatusOK, page); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
