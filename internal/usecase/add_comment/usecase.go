package add_comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

// UseCase use case для добавления отзыва о вещи
type UseCase struct {
	commentRepo  CommentRepository
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	commentRepo CommentRepository,
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		commentRepo:  commentRepo,
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute добавляет отзыв. Автор должен иметь бронирование этой вещи,
// закончившееся до текущего момента. Статус бронирования не проверяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddComment: user=%d, item=%d", req.UserID, req.ItemID)

	author, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("AddComment: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("AddComment: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	if _, err := uc.itemRepo.GetByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			uc.logger.Warn("AddComment: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("AddComment: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddComment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	booking, err := uc.bookingRepo.FindLastCompleted(ctx, req.UserID, req.ItemID, now)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AddComment: user=%d has no completed booking for item id=%d", req.UserID, req.ItemID)
			return nil, ErrNoCompletedBooking
		}
		uc.logger.Error("AddComment: failed to find completed booking: %v", err)
		return nil, fmt.Errorf("%w: failed to find completed booking: %v", ErrInternal, err)
	}

	comment, err := uc.commentRepo.Create(ctx, &domain.Comment{
		Text:      req.Text,
		AuthorID:  author.ID,
		ItemID:    req.ItemID,
		BookingID: booking.ID,
		Created:   now,
	})
	if err != nil {
		uc.logger.Error("AddComment: failed to create comment: %v", err)
		return nil, fmt.Errorf("%w: failed to create comment: %v", ErrInternal, err)
	}

	uc.logger.Info("AddComment: successfully created comment id=%d", comment.ID)
	return &Response{
		ID:         comment.ID,
		Text:       comment.Text,
		AuthorName: author.Name,
		Created:    comment.Created,
	}, nil
}
