package model

import "regexp"

// ActionType classifies entries in the Activity_Log sheet.
type ActionType string

const (
	ActionCreate      ActionType = "CREATE"
	ActionUpdateItem  ActionType = "UPDATE_ITEM"
	ActionUpdateStock ActionType = "UPDATE_STOCK"
	ActionDelete      ActionType = "DELETE"
)

// Stock-adjustment reasons recorded by the UI.
const (
	ReasonRecordUsage  = "Record Usage"
	ReasonReceiveStock = "Receive Stock"
)

// ActivityEntry is one append-only row of the Activity_Log sheet. Entries are
// never updated or deleted; they exist for the audit trail and CSV export.
type ActivityEntry struct {
	ProductID   string
	ProductName string
	ActionType  ActionType
	Reason      string
	Details     string
	Notes       string
	StaffMember string
	Timestamp   string
}

// ActivityColumns is the canonical column order of the Activity_Log sheet.
var ActivityColumns = []string{
	"Product_ID", "Product_Name", "Action_Type", "Reason",
	"Details", "Notes", "Staff_Member", "Timestamp",
}

func ActivityFromRow(row map[string]string) ActivityEntry {
	return ActivityEntry{
		ProductID:   row["Product_ID"],
		ProductName: row["Product_Name"],
		ActionType:  ActionType(row["Action_Type"]),
		Reason:      row["Reason"],
		Details:     row["Details"],
		Notes:       row["Notes"],
		StaffMember: row["Staff_Member"],
		Timestamp:   row["Timestamp"],
	}
}

func (e ActivityEntry) ToRow() map[string]string {
	return map[string]string{
		"Product_ID":   e.ProductID,
		"Product_Name": e.ProductName,
		"Action_Type":  string(e.ActionType),
		"Reason":       e.Reason,
		"Details":      e.Details,
		"Notes":        e.Notes,
		"Staff_Member": e.StaffMember,
		"Timestamp":    e.Timestamp,
	}
}

// UsageRecord is a stock-usage view over the activity log, feeding the
// dashboard usage chart.
type UsageRecord struct {
	ProductID    string
	ProductName  string
	QuantityUsed int
	StaffMember  string
	Timestamp    string
	Notes        string
}

var usageQtyPattern = regexp.MustCompile(`-(\d+)`)

// UsageFromEntry extracts the used quantity from a stock-change detail string
// ("Stock changed from 20 to 15 (-5)" → 5). Entries without a negative delta
// report zero.
func UsageFromEntry(e ActivityEntry) UsageRecord {
	qty := 0
	if m := usageQtyPattern.FindStringSubmatch(e.Details); len(m) == 2 {
		qty = atoiOrZero(m[1])
	}
	return UsageRecord{
		ProductID:    e.ProductID,
		ProductName:  e.ProductName,
		QuantityUsed: qty,
		StaffMember:  e.StaffMember,
		Timestamp:    e.Timestamp,
		Notes:        e.Notes,
	}
}
