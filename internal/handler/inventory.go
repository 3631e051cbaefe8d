package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/middleware"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

type InventoryHandler struct {
	svc      service.InventoryService
	recorder service.ActivityRecorder
}

func NewInventoryHandler(svc service.InventoryService, recorder service.ActivityRecorder) *InventoryHandler {
	return &InventoryHandler{svc: svc, recorder: recorder}
}

func (h *InventoryHandler) List(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		resp, err := h.svc.Search(c.Request.Context(), query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to search inventory"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch inventory data"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req, middleware.ActorName(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	var req dto.UpdateItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req, middleware.ActorName(c))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item not found"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("Failed to update inventory item"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), c.Param("id"), req, middleware.ActorName(c))
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item not found"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	var req dto.DeleteItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), req, middleware.ActorName(c)); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Item not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete inventory item"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute inventory stats"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) UsageRecords(c *gin.Context) {
	resp, err := h.recorder.UsageRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch usage records"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
