package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	mockRepo "sprout/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCustomerService(t *testing.T) (*customerService, *mockRepo.MockTransactionManager, *mockRepo.MockCustomerRepository) {
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockCustomerRepo := mockRepo.NewMockCustomerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCustomerService(mockTxManager, logger)

	return svc.(*customerService), mockTxManager, mockCustomerRepo
}

// passthroughTx wires the transaction manager mock to run the callback with
// a factory serving the given customer repository.
func passthroughTx(t *testing.T, mockTxManager *mockRepo.MockTransactionManager, customerRepo *mockRepo.MockCustomerRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().CustomerRepo().Return(customerRepo).Maybe()

	mockTxManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCustomerService_Lookup_Found(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()
	existing := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Ravi Kumar",
		Phone: "+919876543210",
	}

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(existing, nil)

	customer, found, err := svc.Lookup(ctx, "+919876543210")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, existing, customer)
}

func TestCustomerService_Lookup_NotFound(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(nil, repository.ErrCustomerNotFound)

	customer, found, err := svc.Lookup(ctx, "+919876543210")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, customer)
}

func TestCustomerService_Lookup_RepoFailure(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(nil, errors.New("connection reset"))

	_, _, err := svc.Lookup(ctx, "+919876543210")
	assert.ErrorIs(t, err, domainerrors.ErrReconciliationFailed)
}

func TestCustomerService_Reconcile_ExistingCustomer(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()
	existing := &entity.Customer{
		ID:          uuid.New(),
		Name:        "Ravi Kumar",
		Phone:       "+919876543210",
		TotalOrders: 4,
	}

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(existing, nil)

	customer, err := svc.Reconcile(ctx, "+919876543210", entity.CustomerProfile{Name: "Different Name"})
	require.NoError(t, err)
	// The existing record wins; the fallback profile is ignored.
	assert.Equal(t, existing, customer)
	assert.Equal(t, "Ravi Kumar", customer.Name)
}

func TestCustomerService_Reconcile_CreatesNewCustomer(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(nil, repository.ErrCustomerNotFound)

	mockCustomerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	customer, err := svc.Reconcile(ctx, "+919876543210", entity.CustomerProfile{
		Name:  "Anita Desai",
		City:  "Pune",
		State: "Maharashtra",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anita Desai", customer.Name)
	assert.Equal(t, "+919876543210", customer.Phone)
	assert.Equal(t, "Pune", customer.City)
	assert.Equal(t, "Maharashtra", customer.State)

	// A first-contact customer starts with a zeroed ledger.
	assert.Zero(t, customer.TotalOrders)
	assert.Zero(t, customer.TotalSpent)
	assert.Zero(t, customer.LoyaltyPoints)
	assert.Nil(t, customer.LastOrderDate)
}

func TestCustomerService_Reconcile_InsertRace(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()
	winner := &entity.Customer{
		ID:    uuid.New(),
		Name:  "Anita Desai",
		Phone: "+919876543210",
	}

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(nil, repository.ErrCustomerNotFound).
		Once()

	mockCustomerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrCustomerPhoneTaken)

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(winner, nil).
		Once()

	customer, err := svc.Reconcile(ctx, "+919876543210", entity.CustomerProfile{Name: "Anita Desai"})
	require.NoError(t, err)
	assert.Equal(t, winner, customer)
}

func TestCustomerService_Reconcile_CreateFailure(t *testing.T) {
	svc, mockTxManager, mockCustomerRepo := newTestCustomerService(t)
	passthroughTx(t, mockTxManager, mockCustomerRepo)

	ctx := context.Background()

	mockCustomerRepo.EXPECT().
		FindByPhone(ctx, "+919876543210").
		Return(nil, repository.ErrCustomerNotFound)

	mockCustomerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Return(errors.New("disk full"))

	_, err := svc.Reconcile(ctx, "+919876543210", entity.CustomerProfile{Name: "Anita Desai"})
	assert.ErrorIs(t, err, domainerrors.ErrReconciliationFailed)
}
