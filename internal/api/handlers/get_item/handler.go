package get_item

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	getItemDetails "github.com/m04kA/SMC-ShareItService/internal/usecase/get_item_details"
)

const (
	msgInvalidItemID = "некорректный ID вещи"
	msgNotFound      = "вещь не найдена"
)

type Handler struct {
	useCase GetItemDetailsUseCase
	logger  Logger
}

func NewHandler(useCase GetItemDetailsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /items/{itemId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	itemID, err := handlers.PathID(r, "itemId")
	if err != nil {
		h.logger.Warn("GET /items/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, getItemDetails.ErrItemNotFound) {
			h.logger.Warn("GET /items/{id} - Item not found: item_id=%d", itemID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /items/{id} - Failed to get item: item_id=%d, error=%v", itemID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /items/{id} - Item retrieved successfully: item_id=%d", itemID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
