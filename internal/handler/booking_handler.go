package handler

import (
	"net/http"
	"strconv"

	"github.com/brunecafe/cafe-service/internal/dto"
	"github.com/brunecafe/cafe-service/internal/middleware"
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings", h.ListBookings)
	g.PATCH("/bookings/:id/status", h.UpdateStatus)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Create(c.Request().Context(), service.BookingInput{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	sess := middleware.SessionFromContext(c)

	bookings, err := h.svc.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sess := middleware.SessionFromContext(c)
	booking, err := h.svc.UpdateStatus(c.Request().Context(), sess, uint(id), models.BookingStatus(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}
