package list_owner_items

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/items"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
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

// Handle GET /items
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /items - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, items.ErrUserNotFound) {
			h.logger.Warn("GET /items - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /items - Failed to list items: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items - Items retrieved successfully: user_id=%d, count=%d", userID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
