package queries

import (
	"context"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueueQueryHandler reads the active order queue from the database.
// Terminal orders (rejected, price rejected, completed) are filtered out;
// the rest come back oldest first so the operator works submissions in the
// order they arrived.
type GetOrderQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueueQueryHandler creates a handler for order queue queries.
func NewGetOrderQueueQueryHandler(db *gorm.DB) GetOrderQueueQueryHandler {
	return GetOrderQueueQueryHandler{db: db}
}

// Handle executes the query and returns all non-terminal orders sorted by
// submission time, with the order ID as a tie breaker.
func (h GetOrderQueueQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQueueQuery,
) ([]GetOrderQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetOrderQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			customer_email,
			link,
			image_ref,
			status,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at, id
	`, order.Rejected, order.PriceRejected, order.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderQueueQueryResponse
		var id uuid.UUID
		var status order.Status
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&resp.CustomerName,
			&resp.CustomerEmail,
			&resp.Link,
			&resp.ImageRef,
			&status,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = status.String()
		resp.CreatedAt = createdAt

		queue = append(queue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
