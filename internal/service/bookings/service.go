package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/events"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareItService/pkg/pagination"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	publisher    EventPublisher
	recorder     TransitionRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// recorder может быть nil, если метрики выключены.
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	publisher EventPublisher,
	recorder TransitionRecorder,
	logger Logger,
) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		publisher:    publisher,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Approve подтверждает или отклоняет бронирование.
// Решение принимает только владелец вещи и только для бронирования в статусе WAITING.
func (s *Service) Approve(ctx context.Context, userID, bookingID int64, approved bool) (*models.BookingResponse, error) {
	s.logger.Info("ApproveBooking: booking id=%d, user=%d, approved=%t", bookingID, userID, approved)

	booking, err := s.get(ctx, "ApproveBooking", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsItemOwner(userID) {
		s.logger.Warn("ApproveBooking: user=%d is not the owner of item id=%d", userID, booking.ItemID)
		return nil, ErrNotItemOwner
	}

	if !booking.IsWaiting() {
		s.logger.Warn("ApproveBooking: booking id=%d already %s", bookingID, booking.Status)
		return nil, fmt.Errorf("%w: already %s", ErrAlreadyDecided, strings.ToLower(string(booking.Status)))
	}

	status := domain.DecisionStatus(approved)
	if err := s.bookingRepo.UpdateStatusIfWaiting(ctx, bookingID, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotWaiting) {
			s.logger.Warn("ApproveBooking: booking id=%d was decided concurrently", bookingID)
			return nil, fmt.Errorf("%w: decided concurrently", ErrAlreadyDecided)
		}
		s.logger.Error("ApproveBooking: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Approve - repository error: %v", ErrInternal, err)
	}
	booking.Status = status

	s.recorder.IncBookingTransition(string(status))
	s.publish(ctx, events.NewBookingEvent(events.TypeForStatus(status), booking, s.timeProvider.Now()))

	s.logger.Info("ApproveBooking: booking id=%d is now %s", bookingID, status)
	return models.FromDomainBooking(booking), nil
}

// GetByID возвращает бронирование арендатору или владельцу вещи.
// Остальным пользователям бронирование не видно.
func (s *Service) GetByID(ctx context.Context, userID, bookingID int64) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, "GetBooking", bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsBooker(userID) && !booking.IsItemOwner(userID) {
		s.logger.Warn("GetBooking: user=%d has no access to booking id=%d", userID, bookingID)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// ListForBooker бронирования пользователя, новые первыми
func (s *Service) ListForBooker(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	return s.list(ctx, "ListBookerBookings", req, s.bookingRepo.ListByBooker)
}

// ListForOwner бронирования вещей пользователя, новые первыми
func (s *Service) ListForOwner(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error) {
	return s.list(ctx, "ListOwnerBookings", req, s.bookingRepo.ListByItemOwner)
}

func (s *Service) list(
	ctx context.Context,
	op string,
	req *models.ListBookingsRequest,
	fetch func(ctx context.Context, userID int64) ([]*domain.Booking, error),
) ([]*models.BookingResponse, error) {
	s.logger.Info("%s: user=%d, state=%s", op, req.UserID, req.State)

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, req.UserID, err)
		return nil, fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}

	state, err := domain.ParseBookingState(req.State)
	if err != nil {
		s.logger.Warn("%s: %v", op, err)
		return nil, fmt.Errorf("%w: Unknown state: %s", ErrInvalidState, req.State)
	}

	all, err := fetch(ctx, req.UserID)
	if err != nil {
		s.logger.Error("%s: repository error for user=%d: %v", op, req.UserID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	filtered, err := state.Filter(all, s.timeProvider.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	page := pagination.Apply(filtered, req.Page)
	s.logger.Info("%s: returning %d of %d bookings for user=%d", op, len(page), len(filtered), req.UserID)
	return models.FromDomainBookingList(page), nil
}

func (s *Service) get(ctx context.Context, op string, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish %s for booking id=%d failed: %v", event.Type, event.BookingID, err)
	}
}
