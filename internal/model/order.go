package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a purchase order.
// submitted → in_process → fulfillment → complete, with rejected reachable
// from submitted or in_process. complete and rejected are terminal.
type OrderStatus string

const (
	OrderSubmitted   OrderStatus = "submitted"
	OrderInProcess   OrderStatus = "in_process"
	OrderFulfillment OrderStatus = "fulfillment"
	OrderComplete    OrderStatus = "complete"
	OrderRejected    OrderStatus = "rejected"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderSubmitted:   {OrderInProcess, OrderRejected},
	OrderInProcess:   {OrderFulfillment, OrderRejected},
	OrderFulfillment: {OrderFulfillment, OrderComplete},
}

// CanTransition reports whether from → to is an admitted status change.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsHistoryStatus reports whether orders with this status live in the
// Order_History sheet rather than the live Orders sheet.
func (s OrderStatus) IsHistoryStatus() bool {
	return s == OrderComplete || s == OrderRejected
}

// OrderItem is one line of a purchase order. The JSON tags match the shape
// serialized into the sheet's Items column.
type OrderItem struct {
	ProductID      string   `json:"productId"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	Unit           string   `json:"unit"`
	CurrentStock   int      `json:"currentStock"`
	PricePerUnit   float64  `json:"pricePerUnit"`
	VendorOptions  []string `json:"vendorOptions,omitempty"`
	SelectedVendor string   `json:"selectedVendor"`
	Selected       bool     `json:"selected"`
}

// ReceivedItem records the cumulative quantity received against one order
// line, plus the operator-entered costs applied to inventory on receipt.
type ReceivedItem struct {
	OrderItem
	ReceivedQty  int     `json:"receivedQty"`
	CostPerUnit  float64 `json:"costPerUnit,omitempty"`
	PurchaseCost float64 `json:"purchaseCost,omitempty"`
}

// Order is one row of the Orders (or Order_History) sheet. Items and the
// received snapshot are stored JSON-serialized in their cells.
type Order struct {
	ID            string
	VendorID      string
	VendorName    string
	Items         []OrderItem
	Status        OrderStatus
	CreatedAt     string
	UpdatedAt     string
	SubmittedAt   string
	SubmittedBy   string
	UpdatedBy     string
	Notes         string
	ReceivedItems []ReceivedItem // nil until the first fulfillment session
}

// OrderColumns is the canonical column order of the Orders and Order_History
// sheets.
var OrderColumns = []string{
	"ID", "Vendor_ID", "Vendor_Name", "Items", "Status",
	"Created_At", "Updated_At", "Submitted_At", "Submitted_By", "Updated_By",
	"Notes", "Received_Items",
}

// NewOrderID generates the timestamp-based id used by the Orders sheet.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("order_%d", now.UnixMilli())
}

// OrderFromRow decodes a sheet row. A malformed Items cell is an error (an
// order without lines is unusable); a malformed Received_Items cell degrades
// to no snapshot, matching the source's parse fallback.
func OrderFromRow(row map[string]string) (Order, error) {
	o := Order{
		ID:          row["ID"],
		VendorID:    row["Vendor_ID"],
		VendorName:  row["Vendor_Name"],
		Status:      OrderStatus(row["Status"]),
		CreatedAt:   row["Created_At"],
		UpdatedAt:   row["Updated_At"],
		SubmittedAt: row["Submitted_At"],
		SubmittedBy: row["Submitted_By"],
		UpdatedBy:   row["Updated_By"],
		Notes:       row["Notes"],
	}
	if cell := row["Items"]; cell != "" {
		if err := json.Unmarshal([]byte(cell), &o.Items); err != nil {
			return Order{}, fmt.Errorf("order %s: decode items: %w", o.ID, err)
		}
	}
	if cell := row["Received_Items"]; cell != "" {
		// Tolerate corruption: a fulfillment session restarts from zeros.
		if err := json.Unmarshal([]byte(cell), &o.ReceivedItems); err != nil {
			o.ReceivedItems = nil
		}
	}
	return o, nil
}

// ToRow encodes the order for the sheet.
func (o Order) ToRow() map[string]string {
	items, _ := json.Marshal(o.Items)
	received := ""
	if o.ReceivedItems != nil {
		b, _ := json.Marshal(o.ReceivedItems)
		received = string(b)
	}
	return map[string]string{
		"ID":             o.ID,
		"Vendor_ID":      o.VendorID,
		"Vendor_Name":    o.VendorName,
		"Items":          string(items),
		"Status":         string(o.Status),
		"Created_At":     o.CreatedAt,
		"Updated_At":     o.UpdatedAt,
		"Submitted_At":   o.SubmittedAt,
		"Submitted_By":   o.SubmittedBy,
		"Updated_By":     o.UpdatedBy,
		"Notes":          o.Notes,
		"Received_Items": received,
	}
}

// Total is the order value: sum of price × quantity over selected lines.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		if !it.Selected {
			continue
		}
		line := decimal.NewFromFloat(it.PricePerUnit).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	return total
}

// ReceivedSnapshot returns the per-line cumulative received quantities,
// defaulting every line to zero when no (or a corrupt) snapshot is stored.
func (o Order) ReceivedSnapshot() []ReceivedItem {
	if len(o.ReceivedItems) == len(o.Items) && len(o.Items) > 0 {
		return o.ReceivedItems
	}
	snap := make([]ReceivedItem, len(o.Items))
	for i, it := range o.Items {
		snap[i] = ReceivedItem{OrderItem: it}
	}
	return snap
}
