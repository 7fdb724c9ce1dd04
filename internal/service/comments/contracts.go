package comments

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// CommentRepository интерфейс репозитория отзывов
type CommentRepository interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Comment, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
