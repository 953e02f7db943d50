package models

import "time"

type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusAccepted BookingStatus = "accepted"
	StatusRejected BookingStatus = "rejected"
)

// ValidStatus reports whether s is a status a booking may hold.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Booking struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"not null" json:"name"`
	Email     string        `gorm:"not null" json:"email"`
	Phone     string        `gorm:"not null" json:"phone"`
	Date      string        `gorm:"not null" json:"date"`
	Time      string        `gorm:"not null" json:"time"`
	Guests    int           `gorm:"not null" json:"guests"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
