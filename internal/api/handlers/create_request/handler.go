package create_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/requests"
	"github.com/m04kA/SMC-ShareItService/internal/service/requests/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "описание запроса не может быть пустым"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	service RequestService
	logger  Logger
}

func NewHandler(service RequestService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /requests - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	var req models.CreateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, requests.ErrUserNotFound):
			h.logger.Warn("POST /requests - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, requests.ErrInvalidInput):
			h.logger.Warn("POST /requests - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /requests - Failed to create request: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Request created successfully: request_id=%d, user_id=%d", created.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
