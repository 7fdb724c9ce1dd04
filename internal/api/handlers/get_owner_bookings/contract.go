package get_owner_bookings

import (
	"context"

	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
)

type BookingService interface {
	ListForOwner(ctx context.Context, req *models.ListBookingsRequest) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
