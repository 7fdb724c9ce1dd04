package get_item_details

import "time"

// BookingShort минимальные данные бронирования для карточки вещи
type BookingShort struct {
	ID       int64
	BookerID int64
}

// Comment отзыв в карточке вещи
type Comment struct {
	ID         int64
	Text       string
	AuthorName string
	Created    time.Time
}

// Response карточка вещи с бронированиями и отзывами
type Response struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
	LastBooking *BookingShort
	NextBooking *BookingShort
	Comments    []Comment
}
