// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sprout/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when no customer
// exists for the given key.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrCustomerPhoneTaken is returned when an insert collides with the unique
// phone constraint; the caller resolves the race by re-fetching.
var ErrCustomerPhoneTaken = errors.New("customer phone already registered")

// CustomerRepository defines the standard operations for customer persistence.
// The application layer depends on this interface, not the concrete implementation.
type CustomerRepository interface {
	// FindByID retrieves a single customer by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByPhone retrieves a single customer by their canonical phone number,
	// the natural key used for reconciliation.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, customer *entity.Customer) error

	// Update modifies an existing customer entity in the storage.
	Update(ctx context.Context, customer *entity.Customer) error
}
