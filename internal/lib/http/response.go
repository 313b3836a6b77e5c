package http

import (
	"encoding/json"
	"errors"
	"net/http"

	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
	"github.com/tumbleweedd/two_services_system/orderflow/pkg/logger"
)

type H map[string]any

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(body)
}

// StatusFor maps the error taxonomy onto response codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, internalErrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, internalErrors.ErrOrderNotFound), errors.Is(err, internalErrors.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, internalErrors.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func WriteError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	status := StatusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error(op, logger.Err(err))
		message = http.StatusText(status)
	} else {
		log.Debug(op, logger.Int("status", status), logger.Err(err))
	}

	if encodeErr := WriteJSON(w, status, H{"error": message}); encodeErr != nil {
		log.Error(op, logger.String("encode error", encodeErr.Error()))
	}
}
