package model

import "strconv"

// Vendor is one row of the Vendors sheet. The name is the identity — the
// sheet has no surrogate key, and inventory/order rows reference vendors by
// name with no referential integrity.
type Vendor struct {
	Name        string
	MOQ         int // minimum order quantity (dollars or units); 0 = none
	ContactName string
	ContactInfo string
	Notes       string
}

// VendorColumns is the canonical column order of the Vendors sheet.
var VendorColumns = []string{"Name", "MOQ", "Contact_Name", "Contact_Info", "Notes"}

func VendorFromRow(row map[string]string) Vendor {
	return Vendor{
		Name:        row["Name"],
		MOQ:         atoiOrZero(row["MOQ"]),
		ContactName: row["Contact_Name"],
		ContactInfo: row["Contact_Info"],
		Notes:       row["Notes"],
	}
}

func (v Vendor) ToRow() map[string]string {
	return map[string]string{
		"Name":         v.Name,
		"MOQ":          strconv.Itoa(v.MOQ),
		"Contact_Name": v.ContactName,
		"Contact_Info": v.ContactInfo,
		"Notes":        v.Notes,
	}
}
