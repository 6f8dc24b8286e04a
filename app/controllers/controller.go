package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/logger"
	"github.com/warungku/warung/pkg/orm"
	"github.com/warungku/warung/pkg/response"
)

// fail maps service errors onto HTTP responses. Anything unrecognised is a
// 500 with the detail kept out of the body.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var invalidLine services.InvalidLineError
	var notFound services.ProductNotFoundError
	var noStock services.InsufficientStockError
	var badMove services.InvalidTransitionError

	switch {
	case errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		response.NotFound(w, err.Error())
	case errors.As(err, &notFound):
		response.NotFound(w, err.Error())
	case errors.As(err, &invalidLine), errors.As(err, &badMove):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &noStock):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrCodeAllocation):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrStoreExists):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Unauthorized(w)
	case errors.Is(err, services.ErrNotOwner):
		response.Forbidden(w)
	case errors.Is(err, services.ErrNoStore):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// pageParams reads ?page and ?limit with sane defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

func toPagination(p orm.Pagination) response.Pagination {
	return response.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
