package add_comment

import (
	addComment "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

// AddCommentRequest HTTP request model
type AddCommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse HTTP response model
type CommentResponse struct {
	ID         int64          `json:"id"`
	Text       string         `json:"text"`
	AuthorName string         `json:"authorName"`
	Created    types.DateTime `json:"created"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddCommentRequest) ToUseCaseRequest(userID, itemID int64) *addComment.Request {
	return &addComment.Request{
		UserID: userID,
		ItemID: itemID,
		Text:   r.Text,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *addComment.Response) *CommentResponse {
	return &CommentResponse{
		ID:         resp.ID,
		Text:       resp.Text,
		AuthorName: resp.AuthorName,
		Created:    types.NewDateTime(resp.Created),
	}
}
