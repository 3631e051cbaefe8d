package dto

import "github.com/mccmmj/cafe-inventory/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateItemRequest struct {
	ProductID       string   `json:"product_id"       validate:"required"`
	ProductName     string   `json:"product_name"     validate:"required"`
	Category        string   `json:"category"`
	UnitSize        string   `json:"unit_size"`
	CurrentStock    int      `json:"current_stock"    validate:"min=0"`
	MinLevel        int      `json:"min_level"        validate:"min=0"`
	MaxLevel        int      `json:"max_level"        validate:"min=0"`
	StorageLocation string   `json:"storage_location"`
	PrimaryVendor   string   `json:"primary_vendor"`
	Vendors         []string `json:"vendors"`
	CostPerUnit     string   `json:"cost_per_unit"`
	Notes           string   `json:"notes"`
}

// UpdateItemRequest carries metadata edits. Nil fields are left untouched;
// stock changes go through AdjustStockRequest so they get the stock-mode
// audit entry.
type UpdateItemRequest struct {
	ProductName     *string   `json:"product_name"`
	Category        *string   `json:"category"`
	UnitSize        *string   `json:"unit_size"`
	MinLevel        *int      `json:"min_level"        validate:"omitempty,min=0"`
	MaxLevel        *int      `json:"max_level"        validate:"omitempty,min=0"`
	StorageLocation *string   `json:"storage_location"`
	PrimaryVendor   *string   `json:"primary_vendor"`
	Vendors         *[]string `json:"vendors"`
	CostPerUnit     *string   `json:"cost_per_unit"`
	Notes           *string   `json:"notes"`
}

type AdjustStockRequest struct {
	Adjustment int    `json:"adjustment" validate:"required"`
	Reason     string `json:"reason"     validate:"required"`
	Notes      string `json:"notes"`
}

type DeleteItemRequest struct {
	Reason string `json:"reason" validate:"required"`
	Notes  string `json:"notes"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemResponse struct {
	ProductID       string   `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Category        string   `json:"category"`
	UnitSize        string   `json:"unit_size"`
	CurrentStock    int      `json:"current_stock"`
	MinLevel        int      `json:"min_level"`
	MaxLevel        int      `json:"max_level"`
	StorageLocation string   `json:"storage_location"`
	PrimaryVendor   string   `json:"primary_vendor"`
	Vendors         []string `json:"vendors"`
	CostPerUnit     string   `json:"cost_per_unit"`
	PurchaseCost    string   `json:"purchase_cost,omitempty"`
	LastUpdated     string   `json:"last_updated"`
	Notes           string   `json:"notes,omitempty"`
	Status          string   `json:"status"`
}

func ItemFromModel(it model.InventoryItem) ItemResponse {
	return ItemResponse{
		ProductID:       it.ProductID,
		ProductName:     it.ProductName,
		Category:        it.Category,
		UnitSize:        it.UnitSize,
		CurrentStock:    it.CurrentStock,
		MinLevel:        it.MinLevel,
		MaxLevel:        it.MaxLevel,
		StorageLocation: it.StorageLocation,
		PrimaryVendor:   it.PrimaryVendor,
		Vendors:         it.Vendors,
		CostPerUnit:     it.CostPerUnit,
		PurchaseCost:    it.PurchaseCost,
		LastUpdated:     it.LastUpdated,
		Notes:           it.Notes,
		Status:          string(it.Status),
	}
}

func ItemsFromModel(items []model.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ItemFromModel(it))
	}
	return out
}

// InventoryStatsResponse backs the dashboard summary cards.
type InventoryStatsResponse struct {
	TotalItems int            `json:"total_items"`
	ByStatus   map[string]int `json:"by_status"`
	TotalValue string         `json:"total_value"`
}

type UsageRecordResponse struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	QuantityUsed int    `json:"quantity_used"`
	StaffMember  string `json:"staff_member"`
	Timestamp    string `json:"timestamp"`
	Notes        string `json:"notes,omitempty"`
}
