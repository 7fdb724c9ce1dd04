package add_comment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// CommentRepository интерфейс репозитория отзывов
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindLastCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (*domain.Booking, error)
}

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
