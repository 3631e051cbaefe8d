package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderSubmitted, OrderInProcess))
	assert.True(t, CanTransition(OrderSubmitted, OrderRejected))
	assert.True(t, CanTransition(OrderInProcess, OrderRejected))
	assert.True(t, CanTransition(OrderInProcess, OrderFulfillment))
	assert.True(t, CanTransition(OrderFulfillment, OrderFulfillment), "fulfillment re-entry")
	assert.True(t, CanTransition(OrderFulfillment, OrderComplete))

	// Terminal states admit nothing.
	assert.False(t, CanTransition(OrderComplete, OrderInProcess))
	assert.False(t, CanTransition(OrderRejected, OrderSubmitted))
	// No skipping straight to fulfillment or rejecting mid-fulfillment.
	assert.False(t, CanTransition(OrderSubmitted, OrderFulfillment))
	assert.False(t, CanTransition(OrderFulfillment, OrderRejected))
}

func TestNewOrderID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	assert.Equal(t, "order_1700000000000", NewOrderID(now))
}

func TestOrderRowRoundTrip(t *testing.T) {
	o := Order{
		ID:         "order_1700000000000",
		VendorName: "Acme Coffee",
		Status:     OrderSubmitted,
		Items: []OrderItem{
			{ProductID: "COF-001", Name: "Espresso Beans", Quantity: 5, PricePerUnit: 18, Selected: true},
			{ProductID: "MLK-002", Name: "Oat Milk", Quantity: 3, PricePerUnit: 4.5, Selected: true},
		},
		SubmittedBy: "Dana",
	}

	got, err := OrderFromRow(o.ToRow())
	require.NoError(t, err)

	assert.Equal(t, o.ID, got.ID)
	assert.Equal(t, o.Items, got.Items)
	assert.Equal(t, OrderSubmitted, got.Status)
	assert.Nil(t, got.ReceivedItems)
}

func TestOrderFromRowMalformedItems(t *testing.T) {
	_, err := OrderFromRow(map[string]string{"ID": "order_1", "Items": "{not json"})
	assert.Error(t, err)
}

func TestOrderFromRowCorruptSnapshotDegrades(t *testing.T) {
	o := Order{
		ID:    "order_1",
		Items: []OrderItem{{ProductID: "COF-001", Quantity: 5}},
	}
	row := o.ToRow()
	row["Received_Items"] = "[{broken"

	got, err := OrderFromRow(row)
	require.NoError(t, err)
	assert.Nil(t, got.ReceivedItems)

	snap := got.ReceivedSnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, 0, snap[0].ReceivedQty, "corrupt snapshot restarts from zero")
}

func TestOrderTotalSelectedLinesOnly(t *testing.T) {
	o := Order{Items: []OrderItem{
		{Quantity: 5, PricePerUnit: 18, Selected: true},
		{Quantity: 3, PricePerUnit: 4.5, Selected: true},
		{Quantity: 100, PricePerUnit: 99, Selected: false},
	}}
	assert.Equal(t, "103.50", o.Total().StringFixed(2))
}

func TestReceivedSnapshotPreservesStored(t *testing.T) {
	o := Order{
		Items: []OrderItem{
			{ProductID: "COF-001", Quantity: 5},
			{ProductID: "MLK-002", Quantity: 3},
		},
		ReceivedItems: []ReceivedItem{
			{OrderItem: OrderItem{ProductID: "COF-001", Quantity: 5}, ReceivedQty: 5},
			{OrderItem: OrderItem{ProductID: "MLK-002", Quantity: 3}, ReceivedQty: 1},
		},
	}
	snap := o.ReceivedSnapshot()
	assert.Equal(t, 5, snap[0].ReceivedQty)
	assert.Equal(t, 1, snap[1].ReceivedQty)
}
