package search_items

import (
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
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

// Handle GET /items/search?text=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")

	list, err := h.service.Search(r.Context(), text)
	if err != nil {
		h.logger.Error("GET /items/search - Failed to search items: text=%q, error=%v", text, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items/search - Search completed: text=%q, count=%d", text, len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
