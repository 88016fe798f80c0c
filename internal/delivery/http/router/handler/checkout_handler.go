// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"sprout/internal/delivery/http/response"
	"sprout/internal/domain/entity"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout-related handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// StartCheckoutRequest is the request body for opening a checkout attempt.
type StartCheckoutRequest struct {
	Cart         []entity.CartLine `json:"cart"`
	SessionToken string            `json:"sessionToken"`
	DeviceToken  string            `json:"deviceToken"`
}

// PhoneRequest carries the raw phone form submission.
type PhoneRequest struct {
	PhoneDigits string `json:"phoneDigits"`
}

// CodeRequest carries the submitted one-time code.
type CodeRequest struct {
	Code string `json:"code"`
}

// Start opens a new checkout attempt for the submitted cart.
func (h *CheckoutHandler) Start(c echo.Context) error {
	var req StartCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	sessionToken := req.SessionToken
	if sessionToken == "" {
		sessionToken = bearerToken(c)
	}

	view, err := h.uc.Start(c.Request().Context(), &usecase.StartCheckoutInput{
		Cart:         req.Cart,
		SessionToken: sessionToken,
		DeviceToken:  req.DeviceToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Checkout started")
}

// Get returns the current state of a checkout attempt.
func (h *CheckoutHandler) Get(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Get(c.Request().Context(), attemptID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// RequestChallenge dispatches a one-time code to the submitted phone number.
func (h *CheckoutHandler) RequestChallenge(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	var req PhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}

	view, err := h.uc.RequestChallenge(c.Request().Context(), attemptID, req.PhoneDigits)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Verification code sent")
}

// ResendChallenge re-dispatches the code once the cooldown allows.
func (h *CheckoutHandler) ResendChallenge(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.ResendChallenge(c.Request().Context(), attemptID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Verification code resent")
}

// SubmitCode confirms the one-time code and advances to address collection.
func (h *CheckoutHandler) SubmitCode(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid code input")
	}

	view, err := h.uc.SubmitCode(c.Request().Context(), attemptID, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Phone verified")
}

// SubmitAddress validates the shipping address and advances to review.
func (h *CheckoutHandler) SubmitAddress(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	var req usecase.AddressInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	view, err := h.uc.SubmitAddress(c.Request().Context(), attemptID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Address accepted")
}

// Back returns from review to the address form.
func (h *CheckoutHandler) Back(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Back(c.Request().Context(), attemptID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Place confirms the reviewed order and places it.
func (h *CheckoutHandler) Place(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	view, err := h.uc.Place(c.Request().Context(), attemptID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Order placed")
}

// Abandon discards the checkout attempt.
func (h *CheckoutHandler) Abandon(c echo.Context) error {
	attemptID, err := parseAttemptID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Abandon(c.Request().Context(), attemptID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Checkout abandoned"}, "Checkout abandoned")
}

// bearerToken extracts a verified-session token from the Authorization
// header, if one was sent.
func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}

	return ""
}

func parseAttemptID(c echo.Context) (uuid.UUID, error) {
	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid checkout attempt ID")
	}

	return attemptID, nil
}
