package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// CreateItemRequest запрос на добавление вещи
type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId,omitempty"`
}

// UpdateItemRequest частичное обновление вещи
type UpdateItemRequest struct {
	Name        types.Optional[string] `json:"name"`
	Description types.Optional[string] `json:"description"`
	Available   types.Optional[bool]   `json:"available"`
}

// ToDomainPatch конвертирует запрос в domain патч
func (r *UpdateItemRequest) ToDomainPatch() domain.ItemPatch {
	return domain.ItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

// ItemResponse ответ с данными вещи
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// FromDomainItem конвертирует domain.Item в ItemResponse
func FromDomainItem(it *domain.Item) *ItemResponse {
	return &ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

// FromDomainItemList конвертирует список вещей
func FromDomainItemList(items []*domain.Item) []*ItemResponse {
	result := make([]*ItemResponse, 0, len(items))
	for _, it := range items {
		result = append(result, FromDomainItem(it))
	}
	return result
}
