package domain

import "github.com/m04kA/SMC-ShareItService/pkg/types"

// Item вещь, которую владелец сдает в аренду
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // запрос, в ответ на который добавлена вещь
}

// ItemPatch частичное обновление вещи
type ItemPatch struct {
	Name        types.Optional[string]
	Description types.Optional[string]
	Available   types.Optional[bool]
}

// Apply применяет только переданные поля
func (i *Item) Apply(p ItemPatch) {
	if name, ok := p.Name.Get(); ok {
		i.Name = name
	}
	if description, ok := p.Description.Get(); ok {
		i.Description = description
	}
	if available, ok := p.Available.Get(); ok {
		i.Available = available
	}
}

// IsOwnedBy true, если userID владелец вещи
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}
