package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemId must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() {
		return fmt.Errorf("%w: start is required", ErrInvalidInput)
	}

	if req.End.IsZero() {
		return fmt.Errorf("%w: end is required", ErrInvalidInput)
	}

	return nil
}

// validatePeriod проверяет период относительно текущего времени
func validatePeriod(start, end, now time.Time) error {
	if err := domain.ValidateBookingPeriod(start, end, now); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}
	return nil
}
