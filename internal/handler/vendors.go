package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

type VendorsHandler struct{ svc service.VendorService }

func NewVendorsHandler(svc service.VendorService) *VendorsHandler {
	return &VendorsHandler{svc: svc}
}

func (h *VendorsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch vendors"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Vendor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch vendor"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorsHandler) Create(c *gin.Context) {
	var req dto.VendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VendorsHandler) Update(c *gin.Context) {
	var req dto.VendorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), c.Param("name"), req)
	if err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Vendor not found"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("Failed to update vendor"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VendorsHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("name")); err != nil {
		if errors.Is(err, service.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Vendor not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to delete vendor"))
		return
	}
	c.Status(http.StatusNoContent)
}
