package ports

import "context"

// Operator is the identity produced by the auth collaborator for a verified
// operator. Commands use it only for authorization; it is never stored on
// an order. The zero value is unauthenticated.
type Operator struct {
	name          string
	authenticated bool
}

// NewOperator creates a verified operator identity. Only the auth
// collaborator should call this, after checking credentials.
func NewOperator(name string) Operator {
	return Operator{name: name, authenticated: true}
}

// Name returns the operator's login name, for logging.
func (o Operator) Name() string {
	return o.name
}

// IsAuthenticated reports whether this identity passed credential
// verification. Operator-only commands refuse unauthenticated identities.
func (o Operator) IsAuthenticated() bool {
	return o.authenticated
}

// OperatorAuthenticator is the auth collaborator: it verifies operator
// credentials and produces the identity used to authorize operator-only
// actions (accept/reject order, set price, complete).
type OperatorAuthenticator interface {
	// Authenticate verifies the given credentials. On success it returns an
	// authenticated Operator; on failure an UnauthorizedError.
	Authenticate(ctx context.Context, username, password string) (Operator, error)
}
