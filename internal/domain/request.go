package domain

import "time"

// ItemRequest запрос пользователя на вещь, которой пока нет
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}
