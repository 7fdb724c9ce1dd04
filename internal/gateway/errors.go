package gateway

import "errors"

// ErrValidation базовая ошибка валидации входящего запроса
var ErrValidation = errors.New("gateway: validation failed")

// ValidationError ошибка валидации с сообщением для клиента
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
