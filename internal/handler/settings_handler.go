package handler

import (
	"net/http"

	"github.com/brunecafe/cafe-service/internal/dto"
	"github.com/brunecafe/cafe-service/internal/middleware"
	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	svc service.SettingsService
}

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.GetSettings)
	g.PATCH("/settings", h.UpdateSettings)
}

// GetSettings is public; the open/closed flag drives the landing page.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.svc.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess := middleware.SessionFromContext(c)
	settings, err := h.svc.Update(c.Request().Context(), sess, service.SettingsPatch{
		IsOpen:     req.IsOpen,
		AdminEmail: req.AdminEmail,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
