package update_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/service/users"
	"github.com/m04kA/SMC-ShareItService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректное имя или email"
	msgNotFound           = "пользователь не найден"
	msgEmailConflict      = "пользователь с таким email уже существует"
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

// Handle PATCH /users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		h.logger.Warn("PATCH /users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("PATCH /users/{id} - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("PATCH /users/{id} - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, users.ErrEmailConflict):
			h.logger.Warn("PATCH /users/{id} - Email already in use: user_id=%d", userID)
			handlers.RespondConflict(w, msgEmailConflict)

		default:
			h.logger.Error("PATCH /users/{id} - Failed to update user: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /users/{id} - User updated successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
