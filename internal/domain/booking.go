package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
	StatusCanceled BookingStatus = "CANCELED"
)

var (
	// ErrEndInPast окончание бронирования в прошлом
	ErrEndInPast = errors.New("end can not be in the past")

	// ErrStartEqualsEnd начало совпадает с окончанием
	ErrStartEqualsEnd = errors.New("start can not be equal to end")

	// ErrStartInPast начало бронирования в прошлом
	ErrStartInPast = errors.New("start can not be in the past")

	// ErrStartAfterEnd начало позже окончания
	ErrStartAfterEnd = errors.New("start must be before end")
)

// Booking represents a booking of an item by a user
type Booking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	Status   BookingStatus
	ItemID   int64
	BookerID int64

	// Denormalized from items on read
	ItemName    string
	ItemOwnerID int64
}

// IsWaiting returns true while the owner has not decided on the booking
func (b *Booking) IsWaiting() bool {
	return b.Status == StatusWaiting
}

// IsItemOwner returns true if userID owns the booked item
func (b *Booking) IsItemOwner(userID int64) bool {
	return b.ItemOwnerID == userID
}

// IsBooker returns true if userID made the booking
func (b *Booking) IsBooker(userID int64) bool {
	return b.BookerID == userID
}

// IsCompletedAt returns true if the booking has ended before now
func (b *Booking) IsCompletedAt(now time.Time) bool {
	return b.End.Before(now)
}

// DecisionStatus статус по решению владельца
func DecisionStatus(approved bool) BookingStatus {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}

// ValidateBookingPeriod проверяет интервал бронирования на момент создания
func ValidateBookingPeriod(start, end, now time.Time) error {
	if end.Before(now) {
		return ErrEndInPast
	}
	if start.Equal(end) {
		return ErrStartEqualsEnd
	}
	if start.Before(now) {
		return ErrStartInPast
	}
	if start.After(end) {
		return ErrStartAfterEnd
	}
	return nil
}
