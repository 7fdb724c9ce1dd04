package create_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/items"
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "название, описание и доступность вещи обязательны"
	msgUserNotFound       = "пользователь не найден"
	msgRequestNotFound    = "запрос вещи не найден"
)

type Handler struct {
	service ItemService
	logger  Logger
}

func NewHandler(service ItemService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /items - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	var req models.CreateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /items - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	item, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrUserNotFound):
			h.logger.Warn("POST /items - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, items.ErrRequestNotFound):
			h.logger.Warn("POST /items - Item request not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("POST /items - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /items - Failed to create item: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /items - Item created successfully: item_id=%d, user_id=%d", item.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, item)
}
