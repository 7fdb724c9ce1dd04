package models

import (
	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// CommentResponse ответ с данными отзыва
type CommentResponse struct {
	ID         int64          `json:"id"`
	Text       string         `json:"text"`
	AuthorName string         `json:"authorName"`
	Created    types.DateTime `json:"created"`
}

// FromDomainComment конвертирует domain.Comment в CommentResponse
func FromDomainComment(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    types.NewDateTime(c.Created),
	}
}

// FromDomainCommentList конвертирует список отзывов
func FromDomainCommentList(comments []*domain.Comment) []*CommentResponse {
	result := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		result = append(result, FromDomainComment(c))
	}
	return result
}
