package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или недоступно пользователю
	ErrBookingNotFound = errors.New("booking not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNotItemOwner возвращается, когда решение по бронированию принимает не владелец вещи
	ErrNotItemOwner = errors.New("only the owner of the item can approve the booking")

	// ErrAlreadyDecided возвращается, когда бронирование уже не в статусе WAITING
	ErrAlreadyDecided = errors.New("booking already decided")

	// ErrInvalidState возвращается при неизвестном фильтре state
	ErrInvalidState = errors.New("invalid booking state")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
