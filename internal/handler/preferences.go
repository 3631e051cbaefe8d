package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mccmmj/cafe-inventory/internal/apierror"
	"github.com/mccmmj/cafe-inventory/internal/dto"
	"github.com/mccmmj/cafe-inventory/internal/middleware"
	"github.com/mccmmj/cafe-inventory/internal/service"
)

// PreferencesHandler serves the authenticated user's own notification
// preferences; the email always comes from the session claims, never the
// request body.
type PreferencesHandler struct{ svc service.PreferencesService }

func NewPreferencesHandler(svc service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{svc: svc}
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Get(c.Request.Context(), claims.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch preferences"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Set(c.Request.Context(), claims.Email, *req.EmailNotifications)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to update preferences"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
