package items

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена или принадлежит другому пользователю
	ErrItemNotFound = errors.New("item not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrRequestNotFound возвращается, когда указанный запрос вещи не найден
	ErrRequestNotFound = errors.New("item request not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
