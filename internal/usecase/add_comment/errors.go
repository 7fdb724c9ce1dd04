package add_comment

import "errors"

var (
	// ErrUserNotFound возвращается, когда автор не найден
	ErrUserNotFound = errors.New("add_comment: user not found")

	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("add_comment: item not found")

	// ErrNoCompletedBooking возвращается, когда у автора нет завершенного бронирования вещи
	ErrNoCompletedBooking = errors.New("add_comment: user has not completed booking for this item")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_comment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_comment: internal error")
)
