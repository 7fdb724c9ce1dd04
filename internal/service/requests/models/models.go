package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemModels "github.com/m04kA/SMC-ShareItService/internal/service/items/models"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// CreateRequest запрос на создание запроса вещи
type CreateRequest struct {
	Description string `json:"description"`
}

// ItemRequestResponse запрос вместе с вещами, добавленными в ответ на него
type ItemRequestResponse struct {
	ID          int64                      `json:"id"`
	Description string                     `json:"description"`
	Created     types.DateTime             `json:"created"`
	Items       []*itemModels.ItemResponse `json:"items"`
}

// FromDomainRequest конвертирует запрос и его вещи в ответ
func FromDomainRequest(r *domain.ItemRequest, items []*domain.Item) *ItemRequestResponse {
	return &ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     types.NewDateTime(r.Created),
		Items:       itemModels.FromDomainItemList(items),
	}
}
