package get

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/tumbleweedd/two_services_system/orderflow/internal/domain/models"
	internalErrors "github.com/tumbleweedd/two_services_system/orderflow/internal/lib/errors"
)

const (
	defaultPage = 0
	defaultSize = 10
)

type ListOrdersRequest struct {
	Page   int
	Size   int
	Filter models.OrderFilter
}

func parseListOrdersRequest(query url.Values) (ListOrdersRequest, error) {
	req := ListOrdersRequest{
		Page: defaultPage,
		Size: defaultSize,
		Filter: models.OrderFilter{
			UserID: query.Get("userId"),
			Status: models.OrderStatus(query.Get("status")),
		},
	}

	var err error
	if raw := query.Get("page"); raw != "" {
		if req.Page, err = strconv.Atoi(raw); err != nil {
			return ListOrdersRequest{}, fmt.Errorf("%w: %q", internalErrors.ErrInvalidPage, raw)
		}
	}

	if raw := query.Get("size"); raw != "" {
		if req.Size, err = strconv.Atoi(raw); err != nil {
			return ListOrdersRequest{}, fmt.Errorf("%w: %q", internalErrors.ErrInvalidPageSize, raw)
		}
	}

	return req, nil
}
