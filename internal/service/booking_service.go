package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/internal/repository"
	"gorm.io/gorm"
)

// Notifier delivers best-effort booking notifications. Implementations must
// not block the caller; failures are theirs to log and swallow.
type Notifier interface {
	BookingCreated(booking *models.Booking)
	BookingStatusChanged(booking *models.Booking)
}

// BookingInput is a public reservation submission.
type BookingInput struct {
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
}

type BookingService interface {
	Create(ctx context.Context, input BookingInput) (*models.Booking, error)
	List(ctx context.Context, sess auth.SessionContext) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, sess auth.SessionContext, id uint, status models.BookingStatus) (*models.Booking, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	notifier Notifier
}

func NewBookingService(bookings repository.BookingRepository, notifier Notifier) BookingService {
	return &bookingService{bookings: bookings, notifier: notifier}
}

// validate checks fields in submission order and reports the first failure.
func validate(input BookingInput) *ValidationError {
	if strings.TrimSpace(input.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return &ValidationError{Field: "email", Message: "a valid email is required"}
	}
	if strings.TrimSpace(input.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "phone is required"}
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return &ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return &ValidationError{Field: "time", Message: "time must be HH:MM"}
	}
	if input.Guests < 1 {
		return &ValidationError{Field: "guests", Message: "guests must be a positive number"}
	}
	return nil
}

func (s *bookingService) Create(ctx context.Context, input BookingInput) (*models.Booking, error) {
	if verr := validate(input); verr != nil {
		return nil, verr
	}

	booking := &models.Booking{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Date:   input.Date,
		Time:   input.Time,
		Guests: input.Guests,
		Status: models.StatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	go s.notifier.BookingCreated(booking)

	return booking, nil
}

func (s *bookingService) List(ctx context.Context, sess auth.SessionContext) ([]models.Booking, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthorized
	}
	return s.bookings.FindAll(ctx)
}

// UpdateStatus overwrites any prior status with any valid status; there is no
// transition graph.
func (s *bookingService) UpdateStatus(ctx context.Context, sess auth.SessionContext, id uint, status models.BookingStatus) (*models.Booking, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthorized
	}
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Message: "status must be pending, accepted or rejected"}
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "booking", ID: id}
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	go s.notifier.BookingStatusChanged(booking)

	return booking, nil
}
