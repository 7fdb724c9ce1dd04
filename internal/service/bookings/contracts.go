package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64) ([]*domain.Booking, error)
	ListByItemOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error)
	UpdateStatusIfWaiting(ctx context.Context, id int64, status domain.BookingStatus) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransitionRecorder учитывает смены статусов в метриках
type TransitionRecorder interface {
	IncBookingTransition(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopRecorder struct{}

func (noopRecorder) IncBookingTransition(string) {}
