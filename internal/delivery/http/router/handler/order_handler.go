package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"sprout/internal/delivery/http/response"
	"sprout/internal/domain/entity"
	"sprout/internal/domain/service"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	qr     service.QRCodeService
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, qr service.QRCodeService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		qr:     qr,
		logger: logger,
	}
}

// OrderView pairs an order snapshot with its confirmation QR code.
type OrderView struct {
	Order          *entity.Order `json:"order"`
	ConfirmationQR string        `json:"confirmationQr,omitempty"` // base64-encoded PNG
}

// Get returns a single persisted order snapshot with its tracking QR.
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := &OrderView{Order: order}

	// QR rendering is cosmetic; the snapshot is still served if it fails.
	png, err := h.qr.GenerateOrderQR(orderID)
	if err != nil {
		h.logger.Warn("Failed to render order QR", slog.String("order_id", orderID.String()), slog.Any("error", err))
	} else {
		view.ConfirmationQR = base64.StdEncoding.EncodeToString(png)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ListByCustomer returns a customer's order history, newest first.
func (h *OrderHandler) ListByCustomer(c echo.Context) error {
	customerID, err := uuid.Parse(c.QueryParam("customerId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid customer ID")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// TrackingQR renders the order tracking QR code as a PNG image.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	orderID, err := parseOrderID(c)
	if err != nil {
		return err
	}

	// Confirm the order exists before rendering a code for it.
	if _, err := h.uc.GetOrder(c.Request().Context(), orderID); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qr.GenerateOrderQR(orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseOrderID(c echo.Context) (uuid.UUID, error) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid order ID")
	}

	return orderID, nil
}
