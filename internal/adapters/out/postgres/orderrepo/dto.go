// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer token carries a unique index because it is the customer-facing
// lookup key; status is indexed for the operator queue.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerToken string    `gorm:"type:varchar(32);uniqueIndex"`
	CustomerName  string
	CustomerEmail string
	Link          string
	ImageRef      string
	Description   string
	Status        int `gorm:"index"`
	PriceCents    *int64
	PriceCurrency *string
	OperatorNote  string
	CustomerNote  string
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var priceCents *int64
	var priceCurrency *string
	if price := aggregate.Price(); price != nil {
		cents := price.Cents()
		currency := price.Currency()
		priceCents = &cents
		priceCurrency = &currency
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerToken: aggregate.CustomerToken().String(),
		CustomerName:  aggregate.Customer().Name(),
		CustomerEmail: aggregate.Customer().Email(),
		Link:          aggregate.Submission().Link(),
		ImageRef:      aggregate.Submission().ImageRef(),
		Description:   aggregate.Submission().Description(),
		Status:        int(aggregate.Status()),
		PriceCents:    priceCents,
		PriceCurrency: priceCurrency,
		OperatorNote:  aggregate.OperatorNote(),
		CustomerNote:  aggregate.CustomerNote(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row back to an order aggregate using
// RestoreOrder, which re-validates every invariant on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	token, err := kernel.CustomerTokenFromString(dto.CustomerToken)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	submission, err := order.NewSubmission(dto.Link, dto.ImageRef, dto.Description)
	if err != nil {
		return nil, err
	}

	var price *kernel.Price
	if dto.PriceCents != nil && dto.PriceCurrency != nil {
		p, priceErr := kernel.NewPrice(*dto.PriceCents, *dto.PriceCurrency)
		if priceErr != nil {
			return nil, priceErr
		}
		price = &p
	}

	return order.RestoreOrder(
		id,
		token,
		customer,
		submission,
		order.Status(dto.Status),
		price,
		dto.OperatorNote,
		dto.CustomerNote,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
