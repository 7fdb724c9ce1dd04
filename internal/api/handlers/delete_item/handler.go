package delete_item

import (
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
)

const (
	msgInvalidItemID = "некорректный ID вещи"
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle DELETE /items/{itemId}
// Удаление чужой или отсутствующей вещи ничего не делает и возвращает 200.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("DELETE /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /items/{id} - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, itemID); err != nil {
		h.logger.Error("DELETE /items/{id} - Failed to delete item: item_id=%d, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /items/{id} - Item deleted: item_id=%d, user_id=%d", itemID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
