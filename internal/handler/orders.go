package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/middleware"
	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) Submit(c *gin.Context) {
	var req dto.SubmitOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Submit(c.Request.Context(), req, middleware.ActorName(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch order"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) SetStatus(c *gin.Context) {
	var req dto.SetOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status), middleware.ActorName(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Order not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to update order status"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Fulfill(c *gin.Context) {
	var req dto.FulfillOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Fulfill(c.Request.Context(), c.Param("id"), req, middleware.ActorName(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Order not found"))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New("Failed to fulfill order"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
