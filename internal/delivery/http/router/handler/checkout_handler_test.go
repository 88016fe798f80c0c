package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "sprout/internal/domain/errors"
	mockUC "sprout/internal/mocks/usecase"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCheckoutHandler_Start(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	attemptID := uuid.New()
	var captured *usecase.StartCheckoutInput
	uc.EXPECT().Start(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.StartCheckoutInput) {
			captured = input
		}).
		Return(&usecase.CheckoutView{AttemptID: attemptID, State: "verify_phone", PaymentMethod: "pay_on_delivery"}, nil).
		Once()

	body := `{"cart":[{"name":"Boston Fern","unitPrice":300,"quantity":2}],"deviceToken":"device-1"}`
	c, rec := newCheckoutTestContext(t, http.MethodPost, "/checkout", body)

	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), attemptID.String())

	require.NotNil(t, captured)
	require.Len(t, captured.Cart, 1)
	assert.Equal(t, "Boston Fern", captured.Cart[0].Name)
	assert.Equal(t, "device-1", captured.DeviceToken)
}

func TestCheckoutHandler_Start_BearerSessionToken(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	var captured *usecase.StartCheckoutInput
	uc.EXPECT().Start(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input *usecase.StartCheckoutInput) {
			captured = input
		}).
		Return(&usecase.CheckoutView{AttemptID: uuid.New(), State: "collect_address"}, nil).
		Once()

	body := `{"cart":[{"name":"Snake Plant","unitPrice":450,"quantity":1}]}`
	c, rec := newCheckoutTestContext(t, http.MethodPost, "/checkout", body)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer signed-token")

	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, captured)
	assert.Equal(t, "signed-token", captured.SessionToken)
}

func TestCheckoutHandler_Start_BindingError(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	c, rec := newCheckoutTestContext(t, http.MethodPost, "/checkout", `{"cart": not-json`)

	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCheckoutHandler_Start_EmptyBody(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	uc.EXPECT().Start(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrEmptyCart).
		Once()

	// Echo skips binding when the body is empty, so the handler must cope
	// with an untouched request struct instead of dereferencing nil.
	c, _ := newCheckoutTestContext(t, http.MethodPost, "/checkout", "")

	var err error
	require.NotPanics(t, func() {
		err = h.Start(c)
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutHandler_SubmitCode_EmptyBody(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	attemptID := uuid.New()
	uc.EXPECT().SubmitCode(mock.Anything, attemptID, "").
		Return(nil, domainerrors.ErrCodeMismatch).
		Once()

	c, _ := newCheckoutTestContext(t, http.MethodPost, "/checkout/"+attemptID.String()+"/code", "")
	c.SetParamNames("id")
	c.SetParamValues(attemptID.String())

	var err error
	require.NotPanics(t, func() {
		err = h.SubmitCode(c)
	})
	assert.ErrorIs(t, err, domainerrors.ErrCodeMismatch)
}

func TestCheckoutHandler_Get_InvalidID(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	c, _ := newCheckoutTestContext(t, http.MethodGet, "/checkout/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCheckoutHandler_SubmitCode(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	attemptID := uuid.New()
	uc.EXPECT().SubmitCode(mock.Anything, attemptID, "123456").
		Return(&usecase.CheckoutView{AttemptID: attemptID, State: "collect_address", SessionToken: "signed-token"}, nil).
		Once()

	c, rec := newCheckoutTestContext(t, http.MethodPost, "/checkout/"+attemptID.String()+"/code", `{"code":"123456"}`)
	c.SetParamNames("id")
	c.SetParamValues(attemptID.String())

	require.NoError(t, h.SubmitCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
}

func TestCheckoutHandler_SubmitAddress_PropagatesFieldErrors(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	attemptID := uuid.New()
	fieldErrors := map[string]string{"pincode": "pincode must be 6 digits"}
	uc.EXPECT().SubmitAddress(mock.Anything, attemptID, mock.Anything).
		Return(nil, domainerrors.ErrAddressValidationFailed.WithDetails(fieldErrors)).
		Once()

	c, _ := newCheckoutTestContext(t, http.MethodPost, "/checkout/"+attemptID.String()+"/address", `{"pincode":"1234"}`)
	c.SetParamNames("id")
	c.SetParamValues(attemptID.String())

	err := h.SubmitAddress(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAddressValidationFailed)
}

func TestCheckoutHandler_Place(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	attemptID := uuid.New()
	orderID := uuid.New()
	uc.EXPECT().Place(mock.Anything, attemptID).
		Return(&usecase.CheckoutView{AttemptID: attemptID, State: "placed", OrderID: &orderID}, nil).
		Once()

	c, rec := newCheckoutTestContext(t, http.MethodPost, "/checkout/"+attemptID.String()+"/place", "")
	c.SetParamNames("id")
	c.SetParamValues(attemptID.String())

	require.NoError(t, h.Place(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
}

func TestCheckoutHandler_Abandon(t *testing.T) {
	uc := mockUC.NewMockCheckoutUsecase(t)
	h := NewCheckoutHandler(uc, slog.Default())

	attemptID := uuid.New()
	uc.EXPECT().Abandon(mock.Anything, attemptID).Return(nil).Once()

	c, rec := newCheckoutTestContext(t, http.MethodDelete, "/checkout/"+attemptID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(attemptID.String())

	require.NoError(t, h.Abandon(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
