package delete_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/service/users"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgNotFound      = "пользователь не найден"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("DELETE /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("DELETE /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /users/{id} - Failed to delete user: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
