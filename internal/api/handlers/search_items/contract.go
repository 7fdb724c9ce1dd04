package search_items

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

type ItemService interface {
	Search(ctx context.Context, text string) ([]*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
