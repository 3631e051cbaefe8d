package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

type ActivityHandler struct{ recorder service.ActivityRecorder }

func NewActivityHandler(recorder service.ActivityRecorder) *ActivityHandler {
	return &ActivityHandler{recorder: recorder}
}

type activityEntryResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	ActionType  string `json:"action_type"`
	Reason      string `json:"reason,omitempty"`
	Details     string `json:"details"`
	Notes       string `json:"notes,omitempty"`
	StaffMember string `json:"staff_member"`
	Timestamp   string `json:"timestamp"`
}

func (h *ActivityHandler) List(c *gin.Context) {
	entries, err := h.recorder.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch activity log"))
		return
	}
	resp := make([]activityEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, entryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

func entryResponse(e model.ActivityEntry) activityEntryResponse {
	return activityEntryResponse{
		ProductID:   e.ProductID,
		ProductName: e.ProductName,
		ActionType:  string(e.ActionType),
		Reason:      e.Reason,
		Details:     e.Details,
		Notes:       e.Notes,
		StaffMember: e.StaffMember,
		Timestamp:   e.Timestamp,
	}
}
