package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BookingState фильтр списка бронирований
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ErrUnknownState возвращается для нераспознанного значения фильтра
var ErrUnknownState = errors.New("unknown state")

type statePredicate func(b *Booking, now time.Time) bool

var statePredicates = map[BookingState]statePredicate{
	StateAll: func(*Booking, time.Time) bool { return true },
	StateCurrent: func(b *Booking, now time.Time) bool {
		return !b.Start.After(now) && now.Before(b.End)
	},
	StatePast: func(b *Booking, now time.Time) bool {
		return b.End.Before(now)
	},
	StateFuture: func(b *Booking, now time.Time) bool {
		return b.Start.After(now)
	},
	StateWaiting: func(b *Booking, _ time.Time) bool {
		return b.Status == StatusWaiting
	},
	StateRejected: func(b *Booking, _ time.Time) bool {
		return b.Status == StatusRejected
	},
}

// ParseBookingState разбирает фильтр без учета регистра, пустое значение - ALL
func ParseBookingState(raw string) (BookingState, error) {
	if strings.TrimSpace(raw) == "" {
		return StateAll, nil
	}
	state := BookingState(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := statePredicates[state]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownState, raw)
	}
	return state, nil
}

// Filter оставляет бронирования, подходящие под фильтр на момент now, сохраняя порядок
func (s BookingState) Filter(bookings []*Booking, now time.Time) ([]*Booking, error) {
	match, ok := statePredicates[s]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, s)
	}

	result := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if match(b, now) {
			result = append(result, b)
		}
	}
	return result, nil
}
