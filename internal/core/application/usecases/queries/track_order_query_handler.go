package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler reads a single order by customer token for the
// tracking view. An unknown token yields ObjectNotFoundError; the HTTP layer
// presents that the same way as a malformed token, so the endpoint cannot be
// used to probe which tokens exist.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for customer tracking queries.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the query and returns the tracked order's public view.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			link,
			image_ref,
			description,
			price_cents,
			price_currency,
			operator_note,
			customer_note,
			created_at,
			updated_at
		FROM orders
		WHERE customer_token = ?
	`, query.CustomerToken().String()).Row()

	var resp TrackOrderQueryResponse
	var id uuid.UUID
	var status order.Status
	var priceCents sql.NullInt64
	var priceCurrency sql.NullString
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&id,
		&status,
		&resp.Link,
		&resp.ImageRef,
		&resp.Description,
		&priceCents,
		&priceCurrency,
		&resp.OperatorNote,
		&resp.CustomerNote,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", "presented token")
		}
		return TrackOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	resp.ID = orderID
	resp.Status = status.String()
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	if priceCents.Valid && priceCurrency.Valid {
		price, priceErr := kernel.NewPrice(priceCents.Int64, priceCurrency.String)
		if priceErr != nil {
			return TrackOrderQueryResponse{}, priceErr
		}
		resp.Price = &price
	}

	return resp, nil
}
