package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
)

type bookingRow struct {
	id       int64
	start    time.Time
	end      time.Time
	status   domain.BookingStatus
	itemID   int64
	bookerID int64
}

// BookingRepository бронирования в памяти
type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[booking.ItemID]; !ok {
		return nil, bookingRepo.ErrExecQuery
	}
	if !booking.Start.Before(booking.End) {
		return nil, bookingRepo.ErrExecQuery
	}

	r.s.seq.booking++
	booking.ID = r.s.seq.booking
	r.s.bookings[booking.ID] = bookingRow{
		id:       booking.ID,
		start:    booking.Start,
		end:      booking.End,
		status:   booking.Status,
		itemID:   booking.ItemID,
		bookerID: booking.BookerID,
	}
	return booking, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.s.joinBooking(row), nil
}

func (r *BookingRepository) ListByBooker(_ context.Context, bookerID int64) ([]*domain.Booking, error) {
	bookings := r.filter(func(b *domain.Booking) bool { return b.BookerID == bookerID })
	sortByStartDesc(bookings)
	return bookings, nil
}

func (r *BookingRepository) ListByItemOwner(_ context.Context, ownerID int64) ([]*domain.Booking, error) {
	bookings := r.filter(func(b *domain.Booking) bool { return b.ItemOwnerID == ownerID })
	sortByStartDesc(bookings)
	return bookings, nil
}

func (r *BookingRepository) ListByItemAndStatus(_ context.Context, itemID int64, status domain.BookingStatus) ([]*domain.Booking, error) {
	bookings := r.filter(func(b *domain.Booking) bool { return b.ItemID == itemID && b.Status == status })
	sort.SliceStable(bookings, func(i, j int) bool { return bookings[i].Start.Before(bookings[j].Start) })
	return bookings, nil
}

func (r *BookingRepository) FindLastCompleted(_ context.Context, bookerID, itemID int64, now time.Time) (*domain.Booking, error) {
	bookings := r.filter(func(b *domain.Booking) bool {
		return b.BookerID == bookerID && b.ItemID == itemID && b.End.Before(now)
	})
	if len(bookings) == 0 {
		return nil, bookingRepo.ErrBookingNotFound
	}

	last := bookings[0]
	for _, b := range bookings[1:] {
		if b.End.After(last.End) {
			last = b
		}
	}
	return last, nil
}

func (r *BookingRepository) UpdateStatusIfWaiting(_ context.Context, id int64, status domain.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.bookings[id]
	if !ok || row.status != domain.StatusWaiting {
		return bookingRepo.ErrBookingNotWaiting
	}
	row.status = status
	r.s.bookings[id] = row
	return nil
}

func (r *BookingRepository) filter(match func(*domain.Booking) bool) []*domain.Booking {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bookings := make([]*domain.Booking, 0)
	for _, id := range sortedIDs(r.s.bookings) {
		if b := r.s.joinBooking(r.s.bookings[id]); match(b) {
			bookings = append(bookings, b)
		}
	}
	return bookings
}

// joinBooking дополняет бронирование данными вещи. Вызывать под s.mu.
func (s *Store) joinBooking(row bookingRow) *domain.Booking {
	item := s.items[row.itemID]
	return &domain.Booking{
		ID:          row.id,
		Start:       row.start,
		End:         row.end,
		Status:      row.status,
		ItemID:      row.itemID,
		BookerID:    row.bookerID,
		ItemName:    item.name,
		ItemOwnerID: item.ownerID,
	}
}

func sortByStartDesc(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].ID > bookings[j].ID
		}
		return bookings[i].Start.After(bookings[j].Start)
	})
}
