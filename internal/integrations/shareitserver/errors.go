package shareitserver

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shareitserver client: internal error")

	// ErrUnavailable возвращается, когда сервер не ответил (сеть, таймаут)
	ErrUnavailable = errors.New("shareitserver client: server unavailable")
)
