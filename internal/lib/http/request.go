package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
)

// DecodeJSON reads the request body into dst and runs struct validation.
// Every failure wraps ErrValidation.
func DecodeJSON(r *http.Request, validate *validator.Validate, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload: %v", internalErrors.ErrValidation, err)
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return fmt.Errorf("%w: %s", internalErrors.ErrValidation, formatValidationErrors(validationErrors))
		}

		return fmt.Errorf("%w: %v", internalErrors.ErrValidation, err)
	}

	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) string {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}

		details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(details, "; ")
}
