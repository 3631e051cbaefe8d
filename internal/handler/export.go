package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

type ExportHandler struct{ svc service.ExportService }

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func (h *ExportHandler) Inventory(c *gin.Context) {
	data, err := h.svc.InventoryCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to export inventory"))
		return
	}
	writeCSV(c, "inventory.csv", data)
}

func (h *ExportHandler) ActivityLog(c *gin.Context) {
	data, err := h.svc.ActivityLogCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to export activity log"))
		return
	}
	writeCSV(c, "activity_log.csv", data)
}

func writeCSV(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
