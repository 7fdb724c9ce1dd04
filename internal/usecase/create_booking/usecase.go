package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/events"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	publisher    EventPublisher
	recorder     TransitionRecorder
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// recorder может быть nil, если метрики выключены.
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	publisher EventPublisher,
	recorder TransitionRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		recorder:     recorder,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования.
// Проверка вещи и вставка выполняются в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, item=%d, start=%s, end=%s",
		req.UserID, req.ItemID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2. Арендатор должен существовать
		if _, err := uc.userRepo.GetByID(txCtx, req.UserID); err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
				return ErrUserNotFound
			}
			uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 3. Вещь должна существовать и быть доступной
		item, err := uc.itemRepo.GetByID(txCtx, req.ItemID)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("CreateBooking: item id=%d not found", req.ItemID)
				return ErrItemNotFound
			}
			uc.logger.Error("CreateBooking: failed to get item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
		}

		if !item.Available {
			uc.logger.Warn("CreateBooking: item id=%d is not available", req.ItemID)
			return ErrItemNotAvailable
		}

		// 4. Период не в прошлом, начало строго раньше конца
		if err := validatePeriod(req.Start, req.End, now); err != nil {
			uc.logger.Warn("CreateBooking: period validation failed: %v", err)
			return err
		}

		booking := &domain.Booking{
			Start:       req.Start,
			End:         req.End,
			Status:      domain.StatusWaiting,
			ItemID:      item.ID,
			BookerID:    req.UserID,
			ItemName:    item.Name,
			ItemOwnerID: item.OwnerID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.IncBookingTransition(string(result.Status))
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.BookingCreated, result, now)); err != nil {
		uc.logger.Error("CreateBooking: publish event for booking id=%d failed: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return toResponse(result), nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:       b.ID,
		Start:    b.Start,
		End:      b.End,
		Status:   string(b.Status),
		BookerID: b.BookerID,
		ItemID:   b.ItemID,
		ItemName: b.ItemName,
	}
}
