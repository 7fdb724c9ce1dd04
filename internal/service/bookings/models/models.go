package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/pagination"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// Request модели

// ListBookingsRequest запрос на список бронирований пользователя или владельца
type ListBookingsRequest struct {
	UserID int64
	State  string           // ALL, CURRENT, PAST, FUTURE, WAITING, REJECTED; пусто - ALL
	Page   *pagination.Page // nil - без пагинации
}

// Response модели

// BookerRef ссылка на арендатора
type BookerRef struct {
	ID int64 `json:"id"`
}

// ItemRef ссылка на вещь
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     int64          `json:"id"`
	Start  types.DateTime `json:"start"`
	End    types.DateTime `json:"end"`
	Status string         `json:"status"`
	Booker BookerRef      `json:"booker"`
	Item   ItemRef        `json:"item"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:     b.ID,
		Start:  types.NewDateTime(b.Start),
		End:    types.NewDateTime(b.End),
		Status: string(b.Status),
		Booker: BookerRef{ID: b.BookerID},
		Item:   ItemRef{ID: b.ItemID, Name: b.ItemName},
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
