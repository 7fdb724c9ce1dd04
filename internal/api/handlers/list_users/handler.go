package list_users

import (
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
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

// Handle GET /users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users - Users retrieved successfully: count=%d", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
