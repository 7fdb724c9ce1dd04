package create_booking

import (
	createBooking "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ItemID int64          `json:"itemId"`
	Start  types.DateTime `json:"start"` // "2025-10-15T10:00:00"
	End    types.DateTime `json:"end"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID     int64          `json:"id"`
	Start  types.DateTime `json:"start"`
	End    types.DateTime `json:"end"`
	Status string         `json:"status"`
	Booker BookerResponse `json:"booker"`
	Item   ItemResponse   `json:"item"`
}

type BookerResponse struct {
	ID int64 `json:"id"`
}

type ItemResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID: userID,
		ItemID: r.ItemID,
		Start:  r.Start.Time,
		End:    r.End.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:     resp.ID,
		Start:  types.NewDateTime(resp.Start),
		End:    types.NewDateTime(resp.End),
		Status: resp.Status,
		Booker: BookerResponse{ID: resp.BookerID},
		Item:   ItemResponse{ID: resp.ItemID, Name: resp.ItemName},
	}
}
