package get_item_details

import "errors"

var (
	// ErrItemNotFound возвращается, когда вещь не найдена
	ErrItemNotFound = errors.New("get_item_details: item not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_item_details: internal error")
)
