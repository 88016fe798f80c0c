package impl

import (
	"context"
	"log/slog"

	deliverycontext "sprout/internal/delivery/context"
	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/usecase"

	"github.com/pkg/errors"
)

// customerService implements the CustomerReconciler interface.
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CustomerReconciler {
	return &customerService{
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Lookup finds the customer owning a canonical phone number.
func (srv *customerService) Lookup(ctx context.Context, phone string) (*entity.Customer, bool, error) {
	var customer *entity.Customer
	var found bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		existing, err := repoFactory.CustomerRepo().FindByPhone(ctx, phone)
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find customer by phone")
		}

		customer = existing
		found = true

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(domainerrors.ErrReconciliationFailed, err.Error())
	}

	return customer, found, nil
}

// Reconcile returns the customer for the phone, creating one when absent.
func (srv *customerService) Reconcile(ctx context.Context, phone string, fallback entity.CustomerProfile) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reconciled, err := reconcileCustomer(ctx, repoFactory.CustomerRepo(), phone, fallback)
		if err != nil {
			return err
		}

		customer = reconciled

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Customer reconciliation failed", slog.String("phone", phone), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrReconciliationFailed, err.Error())
	}

	return customer, nil
}

// reconcileCustomer is the lookup-or-create core shared with the order
// assembler, which runs it inside its own transaction. The unique phone
// constraint is the at-most-one-per-phone guarantee: when a concurrent
// insert wins the race, the loser re-fetches instead of blind-inserting.
func reconcileCustomer(ctx context.Context, repo repository.CustomerRepository, phone string, fallback entity.CustomerProfile) (*entity.Customer, error) {
	existing, err := repo.FindByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	fresh := &entity.Customer{
		Name:  fallback.Name,
		Phone: phone,
		City:  fallback.City,
		State: fallback.State,
	}

	err = repo.Create(ctx, fresh)
	if errors.Is(err, repository.ErrCustomerPhoneTaken) {
		// Lost the race: someone else created this customer first.
		winner, refetchErr := repo.FindByPhone(ctx, phone)
		if refetchErr != nil {
			return nil, errors.Wrap(refetchErr, "failed to re-fetch customer after insert race")
		}

		return winner, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	return fresh, nil
}
