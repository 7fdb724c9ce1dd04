package domain

import (
	"strings"

	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// User пользователь сервиса
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserPatch частичное обновление пользователя
type UserPatch struct {
	Name  types.Optional[string]
	Email types.Optional[string]
}

// Apply применяет только переданные поля
func (u *User) Apply(p UserPatch) {
	if name, ok := p.Name.Get(); ok {
		u.Name = name
	}
	if email, ok := p.Email.Get(); ok {
		u.Email = email
	}
}

// IsValidEmail минимальная проверка формата email
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@")
}
