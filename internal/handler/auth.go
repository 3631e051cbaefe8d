package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, apierror.New("Access not allowed for this account"))
			return
		}
		c.JSON(http.StatusUnauthorized, apierror.New("Sign-in failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
