package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sprout/config"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/domain/service"
	mockRepo "sprout/internal/mocks/repository"
	mockSvc "sprout/internal/mocks/service"
	"sprout/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	svc          *orderService
	txManager    *mockRepo.MockTransactionManager
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
	publisher    *mockSvc.MockEventPublisher
}

func newOrderServiceFixture(t *testing.T) *orderServiceFixture {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Checkout: &config.CheckoutConfig{
			FreeDeliveryThreshold: 500,
			DeliveryFee:           50,
		},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(mockCustomerRepo).Maybe()
	factory.EXPECT().OrderRepo().Return(mockOrderRepo).Maybe()

	mockTxManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	svc := NewOrderService(OrderServiceParams{
		TxManager: mockTxManager,
		Publisher: mockPublisher,
		Config:    cfg,
		Logger:    logger,
	})

	return &orderServiceFixture{
		svc:          svc.(*orderService),
		txManager:    mockTxManager,
		customerRepo: mockCustomerRepo,
		orderRepo:    mockOrderRepo,
		publisher:    mockPublisher,
	}
}

func testAddress() entity.Address {
	return entity.Address{
		FullName:     "Anita Desai",
		PhoneDigits:  "9876543210",
		AddressLine1: "14 MG Road",
		City:         "Pune",
		State:        "Maharashtra",
		Pincode:      "411001",
	}
}

func TestOrderService_PlaceOrder_FreeDelivery(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customer := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Anita Desai",
		Phone: "+919876543210",
	}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		Update(ctx, customer).
		Return(nil)

	var published *service.OrderPlacedEvent
	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(_ context.Context, event *service.OrderPlacedEvent) {
			published = event
		}).
		Return(nil)

	order, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Boston Fern", UnitPrice: 300, Quantity: 2},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
		Customer:      customer,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(600), order.Subtotal)
	assert.Zero(t, order.DeliveryFee)
	assert.Equal(t, int64(600), order.Total)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentMethodPayOnDelivery, order.PaymentMethod)
	assert.Equal(t, customer.ID, order.CustomerID)

	// Ledger folded in: one order, 600 spent, 60 points.
	assert.Equal(t, 1, customer.TotalOrders)
	assert.Equal(t, int64(600), customer.TotalSpent)
	assert.Equal(t, int64(60), customer.LoyaltyPoints)
	require.NotNil(t, customer.LastOrderDate)

	require.NotNil(t, published)
	assert.Equal(t, order.ID.String(), published.OrderID)
	assert.True(t, published.LedgerApplied)
}

func TestOrderService_PlaceOrder_DeliveryFeeCharged(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Phone: "+919876543210"}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		Update(ctx, customer).
		Return(nil)

	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	order, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Jade Plant", UnitPrice: 200, Quantity: 1},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
		Customer:      customer,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(200), order.Subtotal)
	assert.Equal(t, int64(50), order.DeliveryFee)
	assert.Equal(t, int64(250), order.Total)

	// Points accrue on the total including the fee: 250 / 10 = 25.
	assert.Equal(t, int64(25), customer.LoyaltyPoints)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	_, err := fixture.svc.PlaceOrder(context.Background(), &usecase.PlaceOrderInput{
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_PlaceOrder_ReconcilesWhenCustomerUnresolved(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()

	fixture.customerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(nil, repository.ErrCustomerNotFound)

	var created *entity.Customer
	fixture.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = uuid.New()
			created = customer
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Customer, error) {
			return created, nil
		})

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	order, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Snake Plant", UnitPrice: 350, Quantity: 2},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
	})
	require.NoError(t, err)

	// The fresh customer record takes its profile from the shipping address.
	assert.Equal(t, "Anita Desai", order.CustomerName)
	assert.NotEqual(t, uuid.Nil, order.CustomerID)
}

func TestOrderService_PlaceOrder_PersistenceFailure(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Phone: "+919876543210"}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("deadlock detected"))

	// No ledger update and no event: the transaction rolled back.
	_, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Boston Fern", UnitPrice: 300, Quantity: 2},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
		Customer:      customer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrOrderPersistenceFailed)

	assert.Zero(t, customer.TotalOrders)
}

func TestOrderService_PlaceOrder_LedgerFailureKeepsOrder(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Phone: "+919876543210"}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		Update(ctx, customer).
		Return(errors.New("lock timeout"))

	var published *service.OrderPlacedEvent
	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Run(func(_ context.Context, event *service.OrderPlacedEvent) {
			published = event
		}).
		Return(nil)

	order, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Boston Fern", UnitPrice: 300, Quantity: 2},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
		Customer:      customer,
	})

	// The sale stands even though the ledger update failed.
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)

	require.NotNil(t, published)
	assert.False(t, published.LedgerApplied)
}

func TestOrderService_PlaceOrder_LedgerFoldsOntoStoredCustomer(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customerID := uuid.New()

	// The durable record, advanced by every committed ledger update.
	stored := &entity.Customer{ID: customerID, Phone: "+919876543210"}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil).
		Times(2)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, customerID).
		RunAndReturn(func(_ context.Context, _ uuid.UUID) (*entity.Customer, error) {
			snapshot := *stored

			return &snapshot, nil
		}).
		Times(2)

	var spentWrites []int64
	fixture.customerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			stored = customer
			spentWrites = append(spentWrites, customer.TotalSpent)
		}).
		Return(nil).
		Times(2)

	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil).
		Times(2)

	// Two attempts opened before either placed, as with two tabs or two
	// devices: each carries the customer state from checkout entry.
	for i := 0; i < 2; i++ {
		entrySnapshot := &entity.Customer{ID: customerID, Phone: "+919876543210"}

		_, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
			Cart: []entity.CartLine{
				{Name: "Boston Fern", UnitPrice: 300, Quantity: 2},
			},
			Address:       testAddress(),
			VerifiedPhone: "+919876543210",
			Customer:      entrySnapshot,
		})
		require.NoError(t, err)
	}

	// The second fold starts from the stored aggregates, not the stale
	// entry-time snapshot.
	require.Equal(t, []int64{600, 1200}, spentWrites)
	assert.Equal(t, 2, stored.TotalOrders)
	assert.Equal(t, int64(120), stored.LoyaltyPoints)
}

func TestOrderService_PlaceOrder_PublishFailureIsNotFatal(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Phone: "+919876543210"}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		Update(ctx, customer).
		Return(nil)

	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker unavailable"))

	_, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Boston Fern", UnitPrice: 300, Quantity: 2},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
		Customer:      customer,
	})
	require.NoError(t, err)
}

func TestOrderService_PlaceOrder_SendsConfirmationPush(t *testing.T) {
	fixture := newOrderServiceFixture(t)
	mockNotifier := mockSvc.NewMockNotificationService(t)
	fixture.svc.notifier = mockNotifier

	ctx := context.Background()
	customer := &entity.Customer{ID: uuid.New(), Phone: "+919876543210"}

	fixture.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	fixture.customerRepo.EXPECT().
		FindByID(ctx, customer.ID).
		Return(customer, nil)

	fixture.customerRepo.EXPECT().
		Update(ctx, customer).
		Return(nil)

	fixture.publisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	mockNotifier.EXPECT().
		SendSingleNotification(ctx, "device-token", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	_, err := fixture.svc.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		Cart: []entity.CartLine{
			{Name: "Boston Fern", UnitPrice: 300, Quantity: 2},
		},
		Address:       testAddress(),
		VerifiedPhone: "+919876543210",
		Customer:      customer,
		DeviceToken:   "device-token",
	})
	require.NoError(t, err)
}

func TestOrderService_GetOrder(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, Total: 600}

	fixture.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(expected, nil)

	order, err := fixture.svc.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	orderID := uuid.New()

	fixture.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fixture.svc.GetOrder(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	fixture := newOrderServiceFixture(t)

	ctx := context.Background()
	customerID := uuid.New()
	expected := []*entity.Order{
		{ID: uuid.New(), CustomerID: customerID},
		{ID: uuid.New(), CustomerID: customerID},
	}

	fixture.orderRepo.EXPECT().
		ListByCustomer(ctx, customerID).
		Return(expected, nil)

	orders, err := fixture.svc.ListOrders(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
