package get_request

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/service/requests/models"
)

type RequestService interface {
	GetByID(ctx context.Context, requestID int64) (*models.ItemRequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
