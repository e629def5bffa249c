package commands_test

import (
	"testing"
	"time"

	"github.com/arrows94/3d-order-manager/internal/core/domain/model/kernel"
	"github.com/arrows94/3d-order-manager/internal/core/domain/model/order"
	"github.com/arrows94/3d-order-manager/internal/core/ports"

	"github.com/stretchr/testify/require"
)

// testOperator returns a verified operator identity, as the auth
// collaborator would produce it.
func testOperator() ports.Operator {
	return ports.NewOperator("admin")
}

// makeOrder builds a fresh order in New status.
func makeOrder(t *testing.T) *order.Order {
	t.Helper()

	token, err := kernel.NewCustomerToken()
	require.NoError(t, err)
	customer, err := order.NewCustomer("Jonas Brandt", "jonas@example.com")
	require.NoError(t, err)
	submission, err := order.NewSubmission("http://example.com/bracket.stl", "", "PETG, black")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), token, customer, submission, time.Now().UTC())
	require.NoError(t, err)
	return o
}

// makeOrderInStatus walks a fresh order along the happy path until it
// reaches the wanted status.
func makeOrderInStatus(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	o := makeOrder(t)
	now := time.Now().UTC()
	price, err := kernel.NewPrice(2500, "EUR")
	require.NoError(t, err)

	switch status {
	case order.New:
	case order.Rejected:
		require.NoError(t, o.Reject("", now))
	case order.AwaitingPrice:
		require.NoError(t, o.Accept("", now))
	case order.PriceSent:
		require.NoError(t, o.Accept("", now))
		require.NoError(t, o.SendPrice(price, now))
	case order.PriceAccepted:
		require.NoError(t, o.Accept("", now))
		require.NoError(t, o.SendPrice(price, now))
		require.NoError(t, o.AcceptPrice(o.CustomerToken(), "", now))
	case order.PriceRejected:
		require.NoError(t, o.Accept("", now))
		require.NoError(t, o.SendPrice(price, now))
		require.NoError(t, o.RejectPrice(o.CustomerToken(), "", now))
	case order.Completed:
		require.NoError(t, o.Accept("", now))
		require.NoError(t, o.SendPrice(price, now))
		require.NoError(t, o.AcceptPrice(o.CustomerToken(), "", now))
		require.NoError(t, o.Complete(now))
	default:
		t.Fatalf("cannot build order in status %s", status)
	}

	return o
}
