package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/events"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// EventPublisher интерфейс публикации событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransitionRecorder учитывает новые бронирования в метриках
type TransitionRecorder interface {
	IncBookingTransition(status string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
