// Package notify carries booking events out of the service, best-effort.
// Failures are logged and swallowed; a booking never fails because its
// notification did.
package notify

import (
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/pkg/rabbitmq"
	"github.com/rs/zerolog/log"
)

const (
	KeyBookingCreated       = "booking.created"
	KeyBookingStatusChanged = "booking.status_changed"
)

// Rabbit publishes booking events for a downstream mailer to consume.
type Rabbit struct {
	publisher *rabbitmq.Publisher
}

func NewRabbit(publisher *rabbitmq.Publisher) *Rabbit {
	return &Rabbit{publisher: publisher}
}

func (n *Rabbit) BookingCreated(booking *models.Booking) {
	if err := n.publisher.Publish(KeyBookingCreated, booking); err != nil {
		log.Warn().Err(err).Uint("booking_id", booking.ID).Msg("booking.created notification failed")
	}
}

func (n *Rabbit) BookingStatusChanged(booking *models.Booking) {
	if err := n.publisher.Publish(KeyBookingStatusChanged, booking); err != nil {
		log.Warn().Err(err).Uint("booking_id", booking.ID).Msg("booking.status_changed notification failed")
	}
}

// Log records the email intent without delivering anything. Used when no
// broker is configured or reachable.
type Log struct{}

func (Log) BookingCreated(booking *models.Booking) {
	log.Info().
		Uint("booking_id", booking.ID).
		Str("email", booking.Email).
		Msgf("[EMAIL] new booking from %s", booking.Name)
}

func (Log) BookingStatusChanged(booking *models.Booking) {
	log.Info().
		Uint("booking_id", booking.ID).
		Str("email", booking.Email).
		Msgf("[EMAIL] booking %d status updated to %s", booking.ID, booking.Status)
}
