package list_all_requests

import (
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

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

// Handle GET /requests/all
// Запросы других пользователей. Существование самого пользователя не проверяется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests/all - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListOthers(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /requests/all - Failed to list requests: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requests/all - Requests retrieved successfully: user_id=%d, count=%d", userID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
