package get_owner_bookings

import (
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareItService/pkg/pagination"
)

// ToServiceRequest формирует запрос к сервису из query параметров state, from, size
func ToServiceRequest(userID int64, state, from, size string) (*models.ListBookingsRequest, error) {
	page, err := pagination.Parse(from, size)
	if err != nil {
		return nil, err
	}

	return &models.ListBookingsRequest{
		UserID: userID,
		State:  state,
		Page:   page,
	}, nil
}
