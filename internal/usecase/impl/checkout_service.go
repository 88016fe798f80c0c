package impl

import (
	"context"
	"log/slog"
	"sync"

	"sprout/config"
	deliverycontext "sprout/internal/delivery/context"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/pricing"
	"sprout/internal/domain/service"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// checkoutAttempt is the mutable state of one in-flight checkout. It lives
// only in memory; abandoning the attempt (or restarting the process) loses
// it, which is acceptable because nothing durable exists before placement.
type checkoutAttempt struct {
	id           uuid.UUID
	state        entity.CheckoutState
	cart         []entity.CartLine
	address      *entity.Address
	phone        string // Canonical E.164 once verification completed.
	customer     *entity.Customer
	prefill      *usecase.AddressPrefill
	challenge    *usecase.ChallengeInfo
	sessionToken string
	deviceToken  string
	orderID      *uuid.UUID
}

// checkoutService implements the CheckoutUsecase interface. It owns the
// attempt registry and sequences the step services; it performs no I/O of
// its own beyond delegating to them.
type checkoutService struct {
	mu       sync.Mutex
	attempts map[uuid.UUID]*checkoutAttempt

	verification usecase.VerificationUsecase
	customers    usecase.CustomerReconciler
	orders       usecase.OrderUsecase
	tokenSvc     service.SessionTokenService
	checkout     *config.CheckoutConfig
	logger       *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Verification usecase.VerificationUsecase
	Customers    usecase.CustomerReconciler
	Orders       usecase.OrderUsecase
	TokenSvc     service.SessionTokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		attempts:     make(map[uuid.UUID]*checkoutAttempt),
		verification: params.Verification,
		customers:    params.Customers,
		orders:       params.Orders,
		tokenSvc:     params.TokenSvc,
		checkout:     params.Config.Checkout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start opens a new attempt for the visitor's cart. A valid verified-session
// token skips phone verification entirely and lands on the address step with
// the known-customer fields prefilled; anything else starts at verification.
func (srv *checkoutService) Start(ctx context.Context, input *usecase.StartCheckoutInput) (*usecase.CheckoutView, error) {
	if len(input.Cart) == 0 {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("start checkout with empty cart")
	}
	if _, err := pricing.ComputeTotals(input.Cart, srv.checkout.FreeDeliveryThreshold, srv.checkout.DeliveryFee); err != nil {
		return nil, err
	}

	attempt := &checkoutAttempt{
		id:          uuid.New(),
		state:       entity.CheckoutVerifyPhone,
		cart:        entity.CloneLines(input.Cart),
		deviceToken: input.DeviceToken,
	}

	if input.SessionToken != "" {
		srv.enterVerified(ctx, attempt, input.SessionToken)
	}

	srv.mu.Lock()
	srv.attempts[attempt.id] = attempt
	view := srv.buildView(attempt)
	srv.mu.Unlock()

	srv.log(ctx).Info("Checkout started", slog.Any("attemptID", attempt.id), slog.String("state", attempt.state.String()))

	return view, nil
}

// enterVerified tries to honor a presented verified-session token. An
// invalid or stale token is not an error; the attempt simply starts at the
// verification step like any anonymous visitor.
func (srv *checkoutService) enterVerified(ctx context.Context, attempt *checkoutAttempt, token string) {
	session, err := srv.tokenSvc.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Presented session token rejected", slog.Any("error", err))

		return
	}

	attempt.phone = session.Phone
	attempt.sessionToken = token
	attempt.state = entity.CheckoutCollectAddress

	customer, found, err := srv.customers.Lookup(ctx, session.Phone)
	if err != nil {
		srv.log(ctx).Warn("Customer lookup failed on checkout entry", slog.Any("error", err))

		return
	}
	if found {
		attempt.customer = customer
		attempt.prefill = &usecase.AddressPrefill{
			Name:  customer.Name,
			City:  customer.City,
			State: customer.State,
		}
	}
}

// Get returns the current attempt state.
func (srv *checkoutService) Get(ctx context.Context, attemptID uuid.UUID) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	attempt, ok := srv.attempts[attemptID]
	if !ok {
		return nil, domainerrors.ErrCheckoutNotFound.WrapMessage("unknown checkout attempt")
	}

	return srv.buildView(attempt), nil
}

// RequestChallenge runs the verification step for an anonymous visitor.
func (srv *checkoutService) RequestChallenge(ctx context.Context, attemptID uuid.UUID, phoneDigits string) (*usecase.CheckoutView, error) {
	if _, err := srv.require(attemptID, entity.CheckoutVerifyPhone); err != nil {
		return nil, err
	}

	info, err := srv.verification.RequestChallenge(ctx, attemptID, phoneDigits)
	if err != nil {
		return nil, err
	}

	return srv.withAttempt(attemptID, func(attempt *checkoutAttempt) {
		attempt.challenge = info
	})
}

// ResendChallenge re-dispatches the code once the cooldown allows.
func (srv *checkoutService) ResendChallenge(ctx context.Context, attemptID uuid.UUID) (*usecase.CheckoutView, error) {
	if _, err := srv.require(attemptID, entity.CheckoutVerifyPhone); err != nil {
		return nil, err
	}

	info, err := srv.verification.Resend(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	return srv.withAttempt(attemptID, func(attempt *checkoutAttempt) {
		attempt.challenge = info
	})
}

// SubmitCode confirms the code and advances to the address step. The
// verified phone is immediately looked up so a returning customer gets the
// same prefill treatment as a token holder.
func (srv *checkoutService) SubmitCode(ctx context.Context, attemptID uuid.UUID, code string) (*usecase.CheckoutView, error) {
	if _, err := srv.require(attemptID, entity.CheckoutVerifyPhone); err != nil {
		return nil, err
	}

	result, err := srv.verification.SubmitCode(ctx, attemptID, code)
	if err != nil {
		return nil, err
	}

	customer, found, err := srv.customers.Lookup(ctx, result.Phone)
	if err != nil {
		srv.log(ctx).Warn("Customer lookup failed after verification", slog.Any("error", err))
		found = false
	}

	return srv.withAttempt(attemptID, func(attempt *checkoutAttempt) {
		attempt.phone = result.Phone
		attempt.sessionToken = result.SessionToken
		attempt.challenge = nil
		attempt.state = entity.CheckoutCollectAddress

		if found {
			attempt.customer = customer
			attempt.prefill = &usecase.AddressPrefill{
				Name:  customer.Name,
				City:  customer.City,
				State: customer.State,
			}
		}
	})
}

// SubmitAddress validates the form and advances to Review.
func (srv *checkoutService) SubmitAddress(ctx context.Context, attemptID uuid.UUID, input *usecase.AddressInput) (*usecase.CheckoutView, error) {
	if _, err := srv.require(attemptID, entity.CheckoutCollectAddress); err != nil {
		return nil, err
	}

	address, fieldErrors := ValidateAddress(input)
	if len(fieldErrors) > 0 {
		return nil, domainerrors.ErrAddressValidationFailed.WithDetails(fieldErrors)
	}

	return srv.withAttempt(attemptID, func(attempt *checkoutAttempt) {
		attempt.address = &address
		attempt.state = entity.CheckoutReview
	})
}

// Back returns from Review to the address step. The submitted address is
// kept so the form comes back filled in.
func (srv *checkoutService) Back(ctx context.Context, attemptID uuid.UUID) (*usecase.CheckoutView, error) {
	if _, err := srv.require(attemptID, entity.CheckoutReview); err != nil {
		return nil, err
	}

	return srv.withAttempt(attemptID, func(attempt *checkoutAttempt) {
		attempt.state = entity.CheckoutCollectAddress
	})
}

// Place runs Review -> Placing -> Placed. The Placing state is claimed under
// the registry lock, so exactly one activation proceeds; a concurrent second
// activation is rejected rather than queued.
func (srv *checkoutService) Place(ctx context.Context, attemptID uuid.UUID) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	attempt, ok := srv.attempts[attemptID]
	if !ok {
		srv.mu.Unlock()

		return nil, domainerrors.ErrCheckoutNotFound.WrapMessage("unknown checkout attempt")
	}
	if attempt.state == entity.CheckoutPlacing {
		srv.mu.Unlock()

		return nil, domainerrors.ErrPlacementInProgress.WrapMessage("placement already running for this attempt")
	}
	if attempt.state != entity.CheckoutReview {
		srv.mu.Unlock()

		return nil, domainerrors.ErrInvalidCheckoutState.WrapMessage("place is only legal from review")
	}
	if attempt.phone == "" || attempt.address == nil {
		srv.mu.Unlock()

		return nil, domainerrors.ErrInvalidCheckoutState.WrapMessage("attempt reached review without phone or address")
	}

	attempt.state = entity.CheckoutPlacing
	input := &usecase.PlaceOrderInput{
		Cart:          entity.CloneLines(attempt.cart),
		Address:       *attempt.address,
		VerifiedPhone: attempt.phone,
		Customer:      attempt.customer,
		DeviceToken:   attempt.deviceToken,
	}
	srv.mu.Unlock()

	// Placement I/O runs outside the lock so other attempts keep moving.
	order, placeErr := srv.orders.PlaceOrder(ctx, input)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if placeErr != nil {
		// Failure path: back to Review with the cart intact so the visitor
		// can retry.
		attempt.state = entity.CheckoutReview

		return nil, placeErr
	}

	attempt.state = entity.CheckoutPlaced
	attempt.orderID = &order.ID
	attempt.cart = nil

	return srv.buildView(attempt), nil
}

// Abandon discards the attempt and its live challenge, if any.
func (srv *checkoutService) Abandon(ctx context.Context, attemptID uuid.UUID) error {
	srv.mu.Lock()
	_, ok := srv.attempts[attemptID]
	delete(srv.attempts, attemptID)
	srv.mu.Unlock()

	if !ok {
		return domainerrors.ErrCheckoutNotFound.WrapMessage("unknown checkout attempt")
	}

	if err := srv.verification.Restart(ctx, attemptID); err != nil {
		return errors.Wrap(err, "failed to discard attempt challenge")
	}

	return nil
}

// require fetches the attempt and checks it is in the expected state.
// Callers that mutate must go through withAttempt afterwards; the registry
// lock is not held across step-service calls.
func (srv *checkoutService) require(attemptID uuid.UUID, state entity.CheckoutState) (*checkoutAttempt, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	attempt, ok := srv.attempts[attemptID]
	if !ok {
		return nil, domainerrors.ErrCheckoutNotFound.WrapMessage("unknown checkout attempt")
	}
	if attempt.state != state {
		return nil, domainerrors.ErrInvalidCheckoutState.WrapMessage("operation not legal in state " + attempt.state.String())
	}

	return attempt, nil
}

// withAttempt applies a mutation under the registry lock and returns the
// resulting view.
func (srv *checkoutService) withAttempt(attemptID uuid.UUID, mutate func(*checkoutAttempt)) (*usecase.CheckoutView, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	attempt, ok := srv.attempts[attemptID]
	if !ok {
		return nil, domainerrors.ErrCheckoutNotFound.WrapMessage("unknown checkout attempt")
	}

	mutate(attempt)

	return srv.buildView(attempt), nil
}

// buildView renders the attempt for the caller. Totals are priced from the
// live cart on every render from Review onward; no total computed at an
// earlier step is ever shown. Callers must hold srv.mu.
func (srv *checkoutService) buildView(attempt *checkoutAttempt) *usecase.CheckoutView {
	view := &usecase.CheckoutView{
		AttemptID:     attempt.id,
		State:         attempt.state,
		Prefill:       attempt.prefill,
		Address:       attempt.address,
		PaymentMethod: entity.PaymentMethodPayOnDelivery,
		SessionToken:  attempt.sessionToken,
		OrderID:       attempt.orderID,
	}

	if attempt.state == entity.CheckoutVerifyPhone {
		view.Challenge = attempt.challenge
	}

	if attempt.state == entity.CheckoutReview || attempt.state == entity.CheckoutPlacing {
		if totals, err := pricing.ComputeTotals(attempt.cart, srv.checkout.FreeDeliveryThreshold, srv.checkout.DeliveryFee); err == nil {
			view.Totals = &totals
		}
	}

	if attempt.state == entity.CheckoutPlaced {
		view.RedirectDelay = srv.checkout.RedirectDelay
	}

	return view
}
