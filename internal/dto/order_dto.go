package dto

import "github.com/mccmmj/cafe-inventory/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OrderItemInput struct {
	ProductID      string   `json:"product_id"      validate:"required"`
	Name           string   `json:"name"            validate:"required"`
	Quantity       int      `json:"quantity"        validate:"min=1"`
	Unit           string   `json:"unit"`
	CurrentStock   int      `json:"current_stock"`
	PricePerUnit   float64  `json:"price_per_unit"  validate:"min=0"`
	VendorOptions  []string `json:"vendor_options"`
	SelectedVendor string   `json:"selected_vendor"`
	Selected       bool     `json:"selected"`
}

type SubmitOrderRequest struct {
	VendorName string           `json:"vendor_name" validate:"required"`
	Items      []OrderItemInput `json:"items"       validate:"required,min=1,dive"`
	Notes      string           `json:"notes"`
}

type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted in_process fulfillment complete rejected"`
}

// FulfillLine carries the operator-entered cumulative received total for one
// order line, plus the costs to stamp onto the inventory record.
type FulfillLine struct {
	ProductID    string  `json:"product_id"    validate:"required"`
	ReceivedQty  int     `json:"received_qty"  validate:"min=0"`
	CostPerUnit  float64 `json:"cost_per_unit" validate:"min=0"`
	PurchaseCost float64 `json:"purchase_cost" validate:"min=0"`
}

type FulfillOrderRequest struct {
	Lines []FulfillLine `json:"lines" validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ProductID      string   `json:"product_id"`
	Name           string   `json:"name"`
	Quantity       int      `json:"quantity"`
	Unit           string   `json:"unit"`
	PricePerUnit   float64  `json:"price_per_unit"`
	VendorOptions  []string `json:"vendor_options,omitempty"`
	SelectedVendor string   `json:"selected_vendor"`
	Selected       bool     `json:"selected"`
	ReceivedQty    int      `json:"received_qty"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	VendorName  string              `json:"vendor_name"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	Total       string              `json:"total"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
	SubmittedAt string              `json:"submitted_at,omitempty"`
	SubmittedBy string              `json:"submitted_by,omitempty"`
	UpdatedBy   string              `json:"updated_by,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

func OrderFromModel(o model.Order) OrderResponse {
	snap := o.ReceivedSnapshot()
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:      it.ProductID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			Unit:           it.Unit,
			PricePerUnit:   it.PricePerUnit,
			VendorOptions:  it.VendorOptions,
			SelectedVendor: it.SelectedVendor,
			Selected:       it.Selected,
			ReceivedQty:    snap[i].ReceivedQty,
		})
	}
	return OrderResponse{
		ID:          o.ID,
		VendorName:  o.VendorName,
		Status:      string(o.Status),
		Items:       items,
		Total:       o.Total().StringFixed(2),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		SubmittedAt: o.SubmittedAt,
		SubmittedBy: o.SubmittedBy,
		UpdatedBy:   o.UpdatedBy,
		Notes:       o.Notes,
	}
}

func OrdersFromModel(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderFromModel(o))
	}
	return out
}
