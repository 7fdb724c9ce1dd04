package get_item

import (
	"context"

	getItemDetails "github.com/m04kA/SMC-ShareItService/internal/usecase/get_item_details"
)

type GetItemDetailsUseCase interface {
	Execute(ctx context.Context, itemID int64) (*getItemDetails.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
