package dto

import "github.com/mccmmj/cafe-inventory/internal/model"

type VendorRequest struct {
	Name        string `json:"name"         validate:"required,min=1"`
	MOQ         int    `json:"moq"          validate:"min=0"`
	ContactName string `json:"contact_name"`
	ContactInfo string `json:"contact_info"`
	Notes       string `json:"notes"`
}

type VendorResponse struct {
	Name        string `json:"name"`
	MOQ         int    `json:"moq"`
	ContactName string `json:"contact_name,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// VendorDetailResponse adds the inventory items that reference the vendor by
// name. References are plain strings with no integrity guarantee, so the
// item list may be empty for a vendor that was renamed upstream.
type VendorDetailResponse struct {
	VendorResponse
	Items []ItemResponse `json:"items"`
}

func VendorFromModel(v model.Vendor) VendorResponse {
	return VendorResponse{
		Name:        v.Name,
		MOQ:         v.MOQ,
		ContactName: v.ContactName,
		ContactInfo: v.ContactInfo,
		Notes:       v.Notes,
	}
}
