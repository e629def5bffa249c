package orderrepo

import (
	"context"
	"errors"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the Postgres error code for unique constraint violations.
const pgUniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly submitted order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errs.NewConcurrentModificationError("order", aggregate.ID().String())
		}
		return errs.NewStorageError("insert order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	return toDomain(dto)
}

// GetByCustomerToken retrieves an order by the customer's tracking token.
func (r *GormOrderRepository) GetByCustomerToken(
	ctx context.Context,
	token kernel.CustomerToken,
) (*order.Order, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_token = ?", token.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "presented token")
		}
		return nil, errs.NewStorageError("get order by token", err)
	}

	return toDomain(dto)
}

// UpdateInStatus persists a lifecycle transition conditionally: the row is
// only written when its stored status still equals expectedStatus. Zero rows
// affected means either a concurrent transition won the race or the order is
// gone; a follow-up existence check tells the two apart.
func (r *GormOrderRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(expectedStatus)).
		Updates(map[string]any{
			"status":         dto.Status,
			"price_cents":    dto.PriceCents,
			"price_currency": dto.PriceCurrency,
			"operator_note":  dto.OperatorNote,
			"customer_note":  dto.CustomerNote,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStorageError("update order", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllActive retrieves all orders that have not reached a terminal status,
// oldest submission first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []int{
			int(order.Rejected),
			int(order.PriceRejected),
			int(order.Completed),
		}).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("list active orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
