// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create persists a new order snapshot and backfills the generated ID and
// timestamps onto the entity.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM, err := fromOrderDomain(order)
	if err != nil {
		return errors.Wrap(err, "failed to encode order snapshot")
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order references unknown customer")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order by its unique ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM)
}

// ListByCustomer retrieves the orders placed by one customer, newest first.
func (repo *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by customer")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		order, err := toOrderDomain(&orderMs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// toOrderDomain maps the persistence model back to a pure domain entity,
// decoding the JSONB snapshots.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	var items []entity.CartLine
	if err := json.Unmarshal(data.Items, &items); err != nil {
		return nil, errors.Wrap(err, "failed to decode order items")
	}

	var address entity.Address
	if err := json.Unmarshal(data.Address, &address); err != nil {
		return nil, errors.Wrap(err, "failed to decode order address")
	}

	return &entity.Order{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		CustomerPhone: data.CustomerPhone,
		CustomerName:  data.CustomerName,
		Items:         items,
		Address:       address,
		Subtotal:      data.Subtotal,
		DeliveryFee:   data.DeliveryFee,
		Total:         data.Total,
		PaymentMethod: data.PaymentMethod,
		Status:        entity.OrderStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromOrderDomain maps a pure domain entity to a GORM persistence model,
// encoding items and address as JSONB snapshots.
func fromOrderDomain(data *entity.Order) (*model.OrderModel, error) {
	items, err := json.Marshal(data.Items)
	if err != nil {
		return nil, err
	}

	address, err := json.Marshal(data.Address)
	if err != nil {
		return nil, err
	}

	return &model.OrderModel{
		ID:            data.ID,
		CustomerID:    data.CustomerID,
		CustomerPhone: data.CustomerPhone,
		CustomerName:  data.CustomerName,
		Items:         datatypes.JSON(items),
		Address:       datatypes.JSON(address),
		Subtotal:      data.Subtotal,
		DeliveryFee:   data.DeliveryFee,
		Total:         data.Total,
		PaymentMethod: data.PaymentMethod,
		Status:        string(data.Status),
	}, nil
}
