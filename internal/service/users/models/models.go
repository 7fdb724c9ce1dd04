package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// CreateUserRequest запрос на регистрацию пользователя
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest частичное обновление. Незаданные поля не меняются.
type UpdateUserRequest struct {
	Name  types.Optional[string] `json:"name"`
	Email types.Optional[string] `json:"email"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateUserRequest) ToDomainPatch() domain.UserPatch {
	return domain.UserPatch{Name: r.Name, Email: r.Email}
}

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// FromDomainUserList конвертирует список пользователей
func FromDomainUserList(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, FromDomainUser(u))
	}
	return result
}
