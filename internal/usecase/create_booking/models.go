package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64     // ID арендатора
	ItemID int64     // ID вещи
	Start  time.Time // Начало аренды
	End    time.Time // Конец аренды
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       int64
	Start    time.Time
	End      time.Time
	Status   string
	BookerID int64
	ItemID   int64
	ItemName string
}
