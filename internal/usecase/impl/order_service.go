package impl

import (
	"context"
	"log/slog"
	"time"

	"sprout/config"
	deliverycontext "sprout/internal/delivery/context"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/pricing"
	"sprout/internal/domain/repository"
	"sprout/internal/domain/service"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface. It is the assembler:
// it turns a checkout attempt into a persisted order snapshot and folds the
// sale into the customer ledger.
type orderService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	notifier  service.NotificationService
	checkout  *config.CheckoutConfig
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Notifier  service.NotificationService `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		notifier:  params.Notifier,
		checkout:  params.Config.Checkout,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder assembles and persists one order.
//
// The order snapshot is the durable source of truth for what was sold: it is
// written first, atomically with customer reconciliation. The ledger update
// runs after it; a ledger failure leaves the order in place and is handed to
// out-of-band repair rather than rolled back.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	if len(input.Cart) == 0 {
		return nil, domainerrors.ErrEmptyCart.WrapMessage("place order with empty cart")
	}

	// Always recompute from the live cart; never trust a total computed at
	// an earlier step.
	totals, err := pricing.ComputeTotals(input.Cart, srv.checkout.FreeDeliveryThreshold, srv.checkout.DeliveryFee)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var order *entity.Order
	var customer *entity.Customer

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer = input.Customer
		if customer == nil {
			reconciled, reconcileErr := reconcileCustomer(ctx, repoFactory.CustomerRepo(), input.VerifiedPhone, entity.CustomerProfile{
				Name:  input.Address.FullName,
				City:  input.Address.City,
				State: input.Address.State,
			})
			if reconcileErr != nil {
				return errors.Wrap(domainerrors.ErrReconciliationFailed, reconcileErr.Error())
			}
			customer = reconciled
		}

		order = &entity.Order{
			CustomerID:    customer.ID,
			CustomerPhone: input.VerifiedPhone,
			CustomerName:  customer.Name,
			Items:         entity.CloneLines(input.Cart),
			Address:       input.Address,
			Subtotal:      totals.Subtotal,
			DeliveryFee:   totals.DeliveryFee,
			Total:         totals.Total,
			PaymentMethod: entity.PaymentMethodPayOnDelivery,
			Status:        entity.OrderStatusPending,
		}

		if createErr := repoFactory.OrderRepo().Create(ctx, order); createErr != nil {
			return errors.Wrap(domainerrors.ErrOrderPersistenceFailed, createErr.Error())
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Order placement failed", slog.String("phone", input.VerifiedPhone), slog.Any("error", err))

		return nil, err
	}

	// Ledger update. The order row is already durable; on failure we keep it
	// and flag the ledger for repair instead of rolling back the sale.
	ledgerApplied := srv.applyLedger(ctx, customer, order.Total, now)

	srv.publishPlaced(ctx, order, customer, ledgerApplied)
	srv.notifyPlaced(ctx, input.DeviceToken, order)

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("customerID", customer.ID),
		slog.Int64("total", order.Total),
		slog.Bool("ledgerApplied", ledgerApplied),
	)

	return order, nil
}

// applyLedger folds the sale into the customer aggregates. Returns false
// when the update failed and the ledger is stale relative to the order.
//
// The customer is re-read inside the transaction: the caller's snapshot may
// predate placements from other attempts, and Update writes absolute column
// values, so folding onto the snapshot would drop concurrent increments.
func (srv *orderService) applyLedger(ctx context.Context, customer *entity.Customer, total int64, placedAt time.Time) bool {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		current, findErr := repoFactory.CustomerRepo().FindByID(ctx, customer.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load customer for ledger update")
		}

		current.RecordOrder(total, placedAt)

		return repoFactory.CustomerRepo().Update(ctx, current)
	})
	if err != nil {
		srv.log(ctx).Error("Customer ledger update failed, order stands",
			slog.Any("customerID", customer.ID),
			slog.Any("error", errors.Wrap(domainerrors.ErrCustomerUpdateFailed, err.Error())),
		)

		return false
	}

	return true
}

// publishPlaced emits the order.placed event. Best effort: the order is
// already durable, so a publish failure is logged, not surfaced.
func (srv *orderService) publishPlaced(ctx context.Context, order *entity.Order, customer *entity.Customer, ledgerApplied bool) {
	event := &service.OrderPlacedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:       order.ID.String(),
		CustomerID:    customer.ID.String(),
		CustomerPhone: order.CustomerPhone,
		Subtotal:      order.Subtotal,
		DeliveryFee:   order.DeliveryFee,
		Total:         order.Total,
		LedgerApplied: ledgerApplied,
	}

	if err := srv.publisher.PublishOrderPlaced(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order.placed event", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// notifyPlaced sends the optional confirmation push.
func (srv *orderService) notifyPlaced(ctx context.Context, deviceToken string, order *entity.Order) {
	if srv.notifier == nil || deviceToken == "" {
		return
	}

	data := map[string]string{"order_id": order.ID.String()}
	if err := srv.notifier.SendSingleNotification(ctx, deviceToken, "Order confirmed", "Your plants are on the way", data); err != nil {
		srv.log(ctx).Warn("Failed to send confirmation push", slog.Any("orderID", order.ID), slog.Any("error", err))
	}
}

// GetOrder retrieves a persisted order snapshot.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "no such order")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves the order history of one customer, newest first.
func (srv *orderService) ListOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
