package kernel

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/arrows94/3d-order-manager/internal/pkg/errs"
)

// tokenEntropyBytes is the amount of random material behind a customer token.
// 18 bytes encode to 24 URL-safe characters, enough entropy to make
// enumeration of other customers' orders infeasible.
const tokenEntropyBytes = 18

// tokenLength is the encoded length of a freshly generated token.
const tokenLength = 24

// ErrCustomerTokenIsNotConstructed is returned when validating a zero-value
// CustomerToken. Tokens must come from NewCustomerToken or CustomerTokenFromString.
var ErrCustomerTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerToken must be created via NewCustomerToken or CustomerTokenFromString")

// CustomerToken is the unguessable credential handed to a customer when an
// order is created. It authorizes the customer's price decision and scopes
// the tracking view to exactly one order; it never changes after creation.
//
// Comparison is constant-time so the token cannot be recovered through
// timing differences.
type CustomerToken struct {
	value string
}

// NewCustomerToken generates a fresh random token.
func NewCustomerToken() (CustomerToken, error) {
	raw := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(raw); err != nil {
		return CustomerToken{}, fmt.Errorf("generate customer token: %w", err)
	}
	return CustomerToken{value: base64.RawURLEncoding.EncodeToString(raw)}, nil
}

// CustomerTokenFromString reconstructs a token from its textual form, as
// presented by a customer or read back from persistence.
func CustomerTokenFromString(s string) (CustomerToken, error) {
	if s == "" {
		return CustomerToken{}, errs.NewValueIsRequiredError("customer token")
	}
	if len(s) != tokenLength {
		return CustomerToken{}, errs.NewValueIsInvalidErrorWithCause("customer token",
			fmt.Errorf("token must be %d characters, got %d", tokenLength, len(s)))
	}
	if _, err := base64.RawURLEncoding.DecodeString(s); err != nil {
		return CustomerToken{}, errs.NewValueIsInvalidErrorWithCause("customer token", err)
	}
	return CustomerToken{value: s}, nil
}

// String returns the textual token. It is safe to show to the owning
// customer only; views for the operator queue must never include it.
func (t CustomerToken) String() string {
	return t.value
}

// Matches reports whether both tokens carry the same value,
// compared in constant time.
func (t CustomerToken) Matches(other CustomerToken) bool {
	return subtle.ConstantTimeCompare([]byte(t.value), []byte(other.value)) == 1
}

// Validate returns ErrCustomerTokenIsNotConstructed for the zero value.
func (t CustomerToken) Validate() error {
	if t.value == "" {
		return ErrCustomerTokenIsNotConstructed
	}
	return nil
}
