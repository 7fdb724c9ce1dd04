package get_item_details

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByItemAndStatus(ctx context.Context, itemID int64, status domain.BookingStatus) ([]*domain.Booking, error)
}

// CommentRepository интерфейс репозитория отзывов
type CommentRepository interface {
	ListByItem(ctx context.Context, itemID int64) ([]*domain.Comment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
