package queries

import (
	"errors"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves a single order for the customer tracking view.
// The customer token serves as both lookup key and credential: whoever holds
// the token sees this order and no other.
type TrackOrderQuery struct {
	customerToken kernel.CustomerToken

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given customer token.
func NewTrackOrderQuery(customerToken kernel.CustomerToken) (TrackOrderQuery, error) {
	if err := customerToken.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		customerToken: customerToken,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// CustomerToken returns the credential presented by the customer.
func (q TrackOrderQuery) CustomerToken() kernel.CustomerToken {
	return q.customerToken
}

// TrackOrderQueryResponse is the customer-facing view of their order:
// current status, the submission as handed in, the offered price once one
// exists, and both parties' notes.
type TrackOrderQueryResponse struct {
	ID           kernel.UUID
	Status       string
	Link         string
	ImageRef     string
	Description  string
	Price        *kernel.Price
	OperatorNote string
	CustomerNote string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
