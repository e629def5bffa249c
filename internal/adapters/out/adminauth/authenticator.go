// Package adminauth verifies operator credentials against a single admin
// account configured through the environment. The configured password may be
// a bcrypt hash or, for local development, a plain string.
package adminauth

import (
	"context"
	"crypto/subtle"
	"strings"

	"github.com/arrows94/3d-order-manager/internal/core/ports"
	"github.com/arrows94/3d-order-manager/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPrefix marks a configured password as a bcrypt hash ("$2a$", "$2b$"
// or "$2y$" all start with this).
const bcryptPrefix = "$2"

// EnvAuthenticator implements ports.OperatorAuthenticator against one
// configured operator account.
type EnvAuthenticator struct {
	username string
	password string
}

// NewEnvAuthenticator creates an authenticator for the configured operator
// credentials.
func NewEnvAuthenticator(username, password string) (*EnvAuthenticator, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errs.NewValueIsRequiredError("operator username")
	}
	if password == "" {
		return nil, errs.NewValueIsRequiredError("operator password")
	}

	return &EnvAuthenticator{username: username, password: password}, nil
}

// Authenticate verifies the presented credentials. Both the username and the
// password comparison are constant-time, so response timing does not reveal
// which of the two was wrong.
func (a *EnvAuthenticator) Authenticate(ctx context.Context, username, password string) (ports.Operator, error) {
	if err := ctx.Err(); err != nil {
		return ports.Operator{}, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(a.username), []byte(username)) == 1
	passOK := a.verifyPassword(password)

	if !userOK || !passOK {
		return ports.Operator{}, errs.NewUnauthorizedError("invalid operator credentials")
	}

	return ports.NewOperator(a.username), nil
}

func (a *EnvAuthenticator) verifyPassword(presented string) bool {
	if strings.HasPrefix(a.password, bcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(a.password), []byte(presented)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(a.password), []byte(presented)) == 1
}

var _ ports.OperatorAuthenticator = (*EnvAuthenticator)(nil)
