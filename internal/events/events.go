// Package events публикация событий жизненного цикла бронирований.
package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// Type тип события, используется как routing key
type Type string

const (
	BookingCreated  Type = "booking.created"
	BookingApproved Type = "booking.approved"
	BookingRejected Type = "booking.rejected"
)

// Event событие по бронированию
type Event struct {
	Type       Type      `json:"type"`
	BookingID  int64     `json:"bookingId"`
	ItemID     int64     `json:"itemId"`
	BookerID   int64     `json:"bookerId"`
	OwnerID    int64     `json:"ownerId"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Publisher отправляет события. Ошибка не должна прерывать основной сценарий.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NewBookingEvent собирает событие из бронирования
func NewBookingEvent(t Type, b *domain.Booking, occurredAt time.Time) Event {
	return Event{
		Type:       t,
		BookingID:  b.ID,
		ItemID:     b.ItemID,
		BookerID:   b.BookerID,
		OwnerID:    b.ItemOwnerID,
		Status:     string(b.Status),
		Start:      b.Start,
		End:        b.End,
		OccurredAt: occurredAt,
	}
}

// TypeForStatus тип события для нового статуса бронирования
func TypeForStatus(status domain.BookingStatus) Type {
	switch status {
	case domain.StatusApproved:
		return BookingApproved
	case domain.StatusRejected:
		return BookingRejected
	default:
		return BookingCreated
	}
}

// Noop отбрасывает события, когда публикация выключена
type Noop struct{}

// Publish ничего не делает
func (Noop) Publish(context.Context, Event) error {
	return nil
}
