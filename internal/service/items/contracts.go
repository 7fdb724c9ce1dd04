package items

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// ItemRepository интерфейс репозитория вещей
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	DeleteByOwner(ctx context.Context, itemID, ownerID int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	Search(ctx context.Context, text string) ([]*domain.Item, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// RequestRepository интерфейс репозитория запросов вещей
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
