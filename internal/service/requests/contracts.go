package requests

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// RequestRepository интерфейс репозитория запросов вещей
type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*domain.ItemRequest, error)
	ListExceptRequestor(ctx context.Context, requestorID int64) ([]*domain.ItemRequest, error)
}

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*domain.Item, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]*domain.Item, error)
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
