package get_item

import (
	getItemDetails "github.com/m04kA/SMC-ShareItService/internal/usecase/get_item_details"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// BookingShortResponse последнее или следующее бронирование вещи
type BookingShortResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentResponse отзыв в карточке вещи
type CommentResponse struct {
	ID         int64          `json:"id"`
	Text       string         `json:"text"`
	AuthorName string         `json:"authorName"`
	Created    types.DateTime `json:"created"`
}

// ItemDetailResponse карточка вещи
type ItemDetailResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	RequestID   *int64                `json:"requestId,omitempty"`
	LastBooking *BookingShortResponse `json:"lastBooking,omitempty"`
	NextBooking *BookingShortResponse `json:"nextBooking,omitempty"`
	Comments    []CommentResponse     `json:"comments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getItemDetails.Response) *ItemDetailResponse {
	comments := make([]CommentResponse, 0, len(resp.Comments))
	for _, c := range resp.Comments {
		comments = append(comments, CommentResponse{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: c.AuthorName,
			Created:    types.NewDateTime(c.Created),
		})
	}

	return &ItemDetailResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Description: resp.Description,
		Available:   resp.Available,
		RequestID:   resp.RequestID,
		LastBooking: toBookingShort(resp.LastBooking),
		NextBooking: toBookingShort(resp.NextBooking),
		Comments:    comments,
	}
}

func toBookingShort(b *getItemDetails.BookingShort) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID}
}
