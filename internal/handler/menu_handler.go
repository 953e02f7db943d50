package handler

import (
	"net/http"

	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/labstack/echo/v4"
)

type MenuHandler struct {
	svc service.MenuService
}

func NewMenuHandler(svc service.MenuService) *MenuHandler {
	return &MenuHandler{svc: svc}
}

func (h *MenuHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/menu", h.ListMenu)
}

func (h *MenuHandler) ListMenu(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
