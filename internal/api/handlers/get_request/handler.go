package get_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/service/requests"
)

const (
	msgInvalidRequestID = "некорректный ID запроса"
	msgNotFound         = "запрос вещи не найден"
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

// Handle GET /requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := handlers.PathID(r, "requestId")
	if err != nil {
		h.logger.Warn("GET /requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		if errors.Is(err, requests.ErrRequestNotFound) {
			h.logger.Warn("GET /requests/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /requests/{id} - Failed to get request: request_id=%d, error=%v", requestID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requests/{id} - Request retrieved successfully: request_id=%d", requestID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
