package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда арендатор не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("create_booking: item not found")

	// ErrItemNotAvailable возвращается, когда вещь недоступна для бронирования
	ErrItemNotAvailable = errors.New("create_booking: item is not available")

	// ErrInvalidPeriod возвращается при некорректном периоде бронирования
	ErrInvalidPeriod = errors.New("create_booking: invalid booking period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
