package model

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Status is the derived stock-health state of an inventory item.
// It is computed from current vs. minimum stock and never persisted.
type Status string

const (
	StatusGood       Status = "GOOD"
	StatusMedium     Status = "MEDIUM"
	StatusLow        Status = "LOW"
	StatusOutOfStock Status = "OUT_OF_STOCK"
)

// DeriveStatus maps (current stock, minimum level) to a stock-health status:
//
//	OUT_OF_STOCK  current == 0
//	LOW           0 < current <= min
//	MEDIUM        min < current <= 1.5*min
//	GOOD          otherwise
//
// With min == 0 the LOW and MEDIUM bands are empty, so any positive stock
// derives GOOD.
func DeriveStatus(current, minLevel int) Status {
	switch {
	case current == 0:
		return StatusOutOfStock
	case current <= minLevel:
		return StatusLow
	case float64(current) <= float64(minLevel)*1.5:
		return StatusMedium
	default:
		return StatusGood
	}
}

// InventoryItem is one row of the Master_Inventory sheet. All cells arrive as
// strings; numeric fields parse leniently (malformed cells read as zero).
type InventoryItem struct {
	ProductID       string
	ProductName     string
	Category        string
	UnitSize        string
	CurrentStock    int
	MinLevel        int
	MaxLevel        int
	StorageLocation string
	PrimaryVendor   string
	Vendors         []string
	CostPerUnit     string // currency-formatted, e.g. "$12.50"
	PurchaseCost    string
	LastUpdated     string
	Notes           string
	Status          Status // derived, not stored
}

// InventoryColumns is the canonical column order of the Master_Inventory
// sheet, used for row writes and CSV export.
var InventoryColumns = []string{
	"Product_ID", "Product_Name", "Category", "Unit_Size",
	"Current_Stock", "Min_Level", "Max_Level", "Storage_Location",
	"Primary_Vendor", "Vendors", "Cost_Per_Unit", "Purchase_Cost",
	"Last_Updated", "Notes",
}

// InventoryFromRow decodes a sheet row and derives the item's status.
func InventoryFromRow(row map[string]string) InventoryItem {
	it := InventoryItem{
		ProductID:       row["Product_ID"],
		ProductName:     row["Product_Name"],
		Category:        row["Category"],
		UnitSize:        row["Unit_Size"],
		CurrentStock:    atoiOrZero(row["Current_Stock"]),
		MinLevel:        atoiOrZero(row["Min_Level"]),
		MaxLevel:        atoiOrZero(row["Max_Level"]),
		StorageLocation: row["Storage_Location"],
		PrimaryVendor:   row["Primary_Vendor"],
		Vendors:         splitVendors(row["Vendors"]),
		CostPerUnit:     row["Cost_Per_Unit"],
		PurchaseCost:    row["Purchase_Cost"],
		LastUpdated:     row["Last_Updated"],
		Notes:           row["Notes"],
	}
	it.Status = DeriveStatus(it.CurrentStock, it.MinLevel)
	return it
}

// ToRow encodes the item for the sheet. Status is derived and omitted.
func (it InventoryItem) ToRow() map[string]string {
	return map[string]string{
		"Product_ID":       it.ProductID,
		"Product_Name":     it.ProductName,
		"Category":         it.Category,
		"Unit_Size":        it.UnitSize,
		"Current_Stock":    strconv.Itoa(it.CurrentStock),
		"Min_Level":        strconv.Itoa(it.MinLevel),
		"Max_Level":        strconv.Itoa(it.MaxLevel),
		"Storage_Location": it.StorageLocation,
		"Primary_Vendor":   it.PrimaryVendor,
		"Vendors":          strings.Join(it.Vendors, ","),
		"Cost_Per_Unit":    it.CostPerUnit,
		"Purchase_Cost":    it.PurchaseCost,
		"Last_Updated":     it.LastUpdated,
		"Notes":            it.Notes,
	}
}

// UnitCost parses the currency-formatted cost cell by stripping every
// character except digits and the decimal point. Malformed cells cost zero.
func (it InventoryItem) UnitCost() decimal.Decimal {
	return ParseCost(it.CostPerUnit)
}

// ParseCost turns a string like "$12.50" or "1,200.00 USD" into a decimal.
func ParseCost(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func splitVendors(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
