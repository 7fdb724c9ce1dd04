package add_comment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	addComment "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
)

const (
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidText        = "текст отзыва не может быть пустым или длиннее 512 символов"
	msgNoCompletedBooking = "оставить отзыв можно только после завершения аренды"
	msgUserNotFound       = "пользователь не найден"
	msgItemNotFound       = "вещь не найдена"
)

type Handler struct {
	useCase AddCommentUseCase
	logger  Logger
}

func NewHandler(useCase AddCommentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /items/{itemId}/comment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items/{id}/comment - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	var req AddCommentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items/{id}/comment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, itemID))
	if err != nil {
		switch {
		case errors.Is(err, addComment.ErrUserNotFound):
			h.logger.Warn("POST /items/{id}/comment - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, addComment.ErrItemNotFound):
			h.logger.Warn("POST /items/{id}/comment - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, addComment.ErrInvalidInput):
			h.logger.Warn("POST /items/{id}/comment - Invalid text: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgInvalidText)

		case errors.Is(err, addComment.ErrNoCompletedBooking):
			h.logger.Warn("POST /items/{id}/comment - No completed booking: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondBadRequest(w, msgNoCompletedBooking)

		default:
			h.logger.Error("POST /items/{id}/comment - Failed to add comment: item_id=%d, user_id=%d, error=%v",
				itemID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items/{id}/comment - Comment added successfully: comment_id=%d, item_id=%d, user_id=%d",
		result.ID, itemID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
