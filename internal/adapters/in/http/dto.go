package http

import "time"

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SubmitOrderResponse is returned after a successful submission. The customer
// token is handed out exactly once, here; the customer needs it for tracking
// and for answering the price offer.
type SubmitOrderResponse struct {
	ID            string `json:"id"`
	CustomerToken string `json:"customer_token"`
	Status        string `json:"status"`
}

// OperatorActionRequest carries the optional note for accept and reject.
type OperatorActionRequest struct {
	Note string `json:"note"`
}

// SetPriceRequest carries the operator's price offer. Amount accepts both
// "12.50" and "12,50"; currency falls back to the configured default.
type SetPriceRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// PriceDecisionRequest carries the customer's verdict on a price offer.
type PriceDecisionRequest struct {
	Decision string `json:"decision"`
	Note     string `json:"note"`
}

// QueueEntry is one row of the operator's active order queue.
type QueueEntry struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Link          string    `json:"link,omitempty"`
	ImageRef      string    `json:"image_ref,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TrackedOrder is the customer-facing view of an order.
type TrackedOrder struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	Link         string     `json:"link,omitempty"`
	ImageRef     string     `json:"image_ref,omitempty"`
	Description  string     `json:"description,omitempty"`
	Price        *PriceView `json:"price,omitempty"`
	OperatorNote string     `json:"operator_note,omitempty"`
	CustomerNote string     `json:"customer_note,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PriceView renders a price for API responses.
type PriceView struct {
	Cents    int64  `json:"cents"`
	Currency string `json:"currency"`
	Display  string `json:"display"`
}
