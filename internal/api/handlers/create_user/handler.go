package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/service/users"
	"github.com/m04kA/SMC-ShareItService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "имя и email обязательны, email должен содержать @"
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

// Handle POST /users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, users.ErrEmailConflict):
			h.logger.Warn("POST /users - Email already in use: %s", req.Email)
			handlers.RespondConflict(w, msgEmailConflict)

		default:
			h.logger.Error("POST /users - Failed to create user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User created successfully: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
