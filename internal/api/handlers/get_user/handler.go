package get_user

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

// Handle GET /users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("GET /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			h.logger.Warn("GET /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /users/{id} - Failed to get user: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id} - User retrieved successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
