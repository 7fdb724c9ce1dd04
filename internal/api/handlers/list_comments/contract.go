package list_comments

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/service/comments/models"
)

type CommentService interface {
	ListByAuthor(ctx context.Context, authorID int64) ([]*models.CommentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
