package orderrepo

import (
	"context"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"gorm.io/gorm"
)

// OrderExistenceChecker answers whether an order row exists without loading
// the full aggregate. The upload cleanup job uses it to tell orphaned scope
// directories apart from ones that belong to a submitted order.
type OrderExistenceChecker struct {
	db *gorm.DB
}

// NewOrderExistenceChecker creates an existence checker over the orders table.
func NewOrderExistenceChecker(db *gorm.DB) *OrderExistenceChecker {
	return &OrderExistenceChecker{db: db}
}

// Exists reports whether an order with the given id is stored.
func (c *OrderExistenceChecker) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := c.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return false, errs.NewStorageError("check order existence", err)
	}
	return count > 0, nil
}
