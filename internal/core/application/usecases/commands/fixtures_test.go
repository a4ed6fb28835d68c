package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/claim"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func testLine(t *testing.T, variationID *kernel.UUID, quantity int) order.Line {
	t.Helper()
	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), variationID, quantity, price)
	require.NoError(t, err)
	return line
}

func testOrder(t *testing.T, buyerID kernel.UUID, status order.Status, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		variationID := kernel.NewUUID()
		lines = []order.Line{testLine(t, &variationID, 1)}
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), buyerID, lines, status, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func testDelivery(t *testing.T, orderID kernel.UUID, courierID *kernel.UUID, status delivery.Status) *delivery.Delivery {
	t.Helper()
	address, err := delivery.NewAddress("12 Rue des Halles", "Lyon", "69002")
	require.NoError(t, err)
	d, err := delivery.RestoreDelivery(kernel.NewUUID(), orderID, address, courierID, time.Now().AddDate(0, 0, 3), status)
	require.NoError(t, err)
	return d
}

func testClaim(t *testing.T, orderID, claimantID kernel.UUID, status claim.Status) *claim.Claim {
	t.Helper()
	c, err := claim.RestoreClaim(kernel.NewUUID(), orderID, claimantID, "item arrived damaged", status)
	require.NoError(t, err)
	return c
}
