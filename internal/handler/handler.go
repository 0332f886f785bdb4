package handler

import (
	"context"
	"errors"
	"fooodimp-be/internal/apperror"
	"fooodimp-be/internal/catalog"
	"fooodimp-be/internal/logger"
	"fooodimp-be/internal/metrics"
	"fooodimp-be/internal/order"
	"fooodimp-be/internal/utils"
	"net/http"

	"go.uber.org/zap"
)

type HealthChecker interface {
	Check(ctx context.Context) error
}

// Handler serves the HTTP surface on top of the catalog and order services.
type Handler struct {
	CatalogSvc catalog.Service
	OrderSvc   order.Service
	Health     HealthChecker
	Metrics    *metrics.Registry

	// exposeStoreErrors puts the backend error text into 500 responses.
	exposeStoreErrors bool
}

func NewHandler(
	catalogSvc catalog.Service,
	orderSvc order.Service,
	health HealthChecker,
	reg *metrics.Registry,
	exposeStoreErrors bool,
) *Handler {
	return &Handler{
		CatalogSvc:        catalogSvc,
		OrderSvc:          orderSvc,
		Health:            health,
		Metrics:           reg,
		exposeStoreErrors: exposeStoreErrors,
	}
}

// writeError is the single place service errors become HTTP responses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperror.HTTPStatus(err)
	message := err.Error()

	switch apperror.KindOf(err) {
	case apperror.KindStore:
		logger.FromCtx(r.Context()).Error("store failure", zap.Error(err))
		if !h.exposeStoreErrors {
			message = storePrefix(err)
		}
	case apperror.KindUnknown:
		logger.FromCtx(r.Context()).Error("unexpected error", zap.Error(err))
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSONError(w, message, status)
}

// storePrefix drops the backend detail and keeps the caller-facing prefix.
func storePrefix(err error) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return http.StatusText(http.StatusInternalServerError)
}
