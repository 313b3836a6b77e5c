package get

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	httpresponse "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/http"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type paymentGetter interface {
	PaymentByOrder(ctx context.Context, orderID string) (*models.Payment, error)
	PaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error)
	Payments(ctx context.Context) ([]models.Payment, error)
	Stats(ctx context.Context) (*models.PaymentStats, error)
}

type Handler struct {
	log logger.Logger

	paymentGetter paymentGetter
}

func NewHandler(log logger.Logger, paymentGetter paymentGetter) *Handler {
	return &Handler{
		log:           log,
		paymentGetter: paymentGetter,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/", h.Payments)
		r.Get("/order/{orderId}", h.PaymentByOrder)
		r.Get("/user/{userId}", h.PaymentsByUser)
		r.Get("/stats", h.Stats)
	})
}

func (h *Handler) PaymentByOrder(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.get.PaymentByOrder"

	payment, err := h.paymentGetter.PaymentByOrder(r.Context(), chi.URLParam(r, "orderId"))
	h.respond(w, op, payment, err)
}

func (h *Handler) PaymentsByUser(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.get.PaymentsByUser"

	payments, err := h.paymentGetter.PaymentsByUser(r.Context(), chi.URLParam(r, "userId"))
	if payments == nil {
		payments = []models.Payment{}
	}

	h.respond(w, op, payments, err)
}

func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.get.Payments"

	payments, err := h.paymentGetter.Payments(r.Context())
	if payments == nil {
		payments = []models.Payment{}
	}

	h.respond(w, op, payments, err)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.payment.get.Stats"

	stats, err := h.paymentGetter.Stats(r.Context())
	h.respond(w, op, stats, err)
}

func (h *Handler) respond(w http.ResponseWriter, op string, body any, err error) {
	if err != nil {
		httpresponse.WriteError(w, h.log, op, err)
		return
	}

	if err = httpresponse.WriteJSON(w, http.StatusOK, body); err != nil {
		h.log.Error(op, logger.String("failed to encode response", err.Error()))
	}
}
