package list_own_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/requests"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgUserNotFound  = "пользователь не найден"
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

// Handle GET /requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /requests - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListOwn(r.Context(), userID)
	if err != nil {
		if errors.Is(err, requests.ErrUserNotFound) {
			h.logger.Warn("GET /requests - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /requests - Failed to list requests: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requests - Requests retrieved successfully: user_id=%d, count=%d", userID, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
