package list_all_requests

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/service/requests/models"
)

type RequestService interface {
	ListOthers(ctx context.Context, userID int64) ([]*models.ItemRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
