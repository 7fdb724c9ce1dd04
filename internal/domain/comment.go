package domain

import "time"

// Comment отзыв о вещи после завершенного бронирования
type Comment struct {
	ID        int64
	Text      string
	AuthorID  int64
	ItemID    int64
	BookingID int64
	Created   time.Time

	// Denormalized from users on read
	AuthorName string
}
