package update_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/items"
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

const (
	msgInvalidItemID      = "некорректный ID вещи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "название вещи не может быть пустым"
	msgNotFound           = "вещь не найдена"
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

// Handle PATCH /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("PATCH /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /items/{id} - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /items/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Чужая вещь отдается как отсутствующая
	item, err := h.service.Update(r.Context(), userID, itemID, &req)
	if err != nil {
		switch {
		case errors.Is(err, items.ErrItemNotFound):
			h.logger.Warn("PATCH /items/{id} - Item not found: item_id=%d, user_id=%d", itemID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, items.ErrInvalidInput):
			h.logger.Warn("PATCH /items/{id} - Invalid input: item_id=%d, error=%v", itemID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /items/{id} - Failed to update item: item_id=%d, error=%v", itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /items/{id} - Item updated successfully: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, item)
}
