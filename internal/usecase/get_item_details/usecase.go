package get_item_details

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
)

// UseCase use case для получения карточки вещи
type UseCase struct {
	itemRepo    ItemRepository
	bookingRepo BookingRepository
	commentRepo CommentRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	itemRepo ItemRepository,
	bookingRepo BookingRepository,
	commentRepo CommentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute собирает вещь, ее ожидающие бронирования и отзывы
func (uc *UseCase) Execute(ctx context.Context, itemID int64) (*Response, error) {
	uc.logger.Info("GetItemDetails: item id=%d", itemID)

	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("GetItemDetails: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("GetItemDetails: failed to get item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	waiting, err := uc.bookingRepo.ListByItemAndStatus(ctx, itemID, domain.StatusWaiting)
	if err != nil {
		uc.logger.Error("GetItemDetails: failed to list bookings for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	comments, err := uc.commentRepo.ListByItem(ctx, itemID)
	if err != nil {
		uc.logger.Error("GetItemDetails: failed to list comments for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: failed to list comments: %v", ErrInternal, err)
	}

	resp := &Response{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		Comments:    make([]Comment, 0, len(comments)),
	}
	resp.LastBooking, resp.NextBooking = lastAndNext(waiting)

	for _, c := range comments {
		resp.Comments = append(resp.Comments, Comment{
			ID:         c.ID,
			Text:       c.Text,
			AuthorName: c.AuthorName,
			Created:    c.Created,
		})
	}

	return resp, nil
}

// lastAndNext сортирует бронирования по началу и берет последний и предпоследний элементы.
// Это позиционное правило, а не ближайшие по времени бронирования.
func lastAndNext(bookings []*domain.Booking) (last, next *BookingShort) {
	if len(bookings) == 0 {
		return nil, nil
	}

	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	n := len(sorted)
	last = &BookingShort{ID: sorted[n-1].ID, BookerID: sorted[n-1].BookerID}
	if n > 1 {
		next = &BookingShort{ID: sorted[n-2].ID, BookerID: sorted[n-2].BookerID}
	}
	return last, next
}
