package list_comments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/comments"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	service CommentService
	logger  Logger
}

func NewHandler(service CommentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /comments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /comments - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListByAuthor(r.Context(), userID)
	if err != nil {
		if errors.Is(err, comments.ErrUserNotFound) {
			h.logger.Warn("GET /comments - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /comments - Failed to list comments: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /comments - Comments retrieved successfully: user_id=%d, count=%d", userID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
