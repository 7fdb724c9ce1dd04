package add_comment

import "time"

// Request модель запроса на добавление отзыва
type Request struct {
	UserID int64  // ID автора
	ItemID int64  // ID вещи
	Text   string // Текст отзыва
}

// Response модель ответа с созданным отзывом
type Response struct {
	ID         int64
	Text       string
	AuthorName string
	Created    time.Time
}
