package dto

import (
	"time"

	"github.com/brunecafe/cafe-service/internal/models"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type BookingResponse struct {
	ID        uint                 `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone"`
	Date      string               `json:"date"`
	Time      string               `json:"time"`
	Guests    int                  `json:"guests"`
	Status    models.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Date:      b.Date,
		Time:      b.Time,
		Guests:    b.Guests,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
}
