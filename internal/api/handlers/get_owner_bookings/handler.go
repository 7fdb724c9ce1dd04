package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidPage   = "параметр from должен быть неотрицательным, size - положительным"
	msgUserNotFound  = "пользователь не найден"
	msgUnknownState  = "Unknown state: "
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /bookings/owner?state=&from=&size=
// Бронирования вещей, которыми владеет пользователь, новые первыми.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/owner - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	state := query.Get("state")

	serviceReq, err := ToServiceRequest(userID, state, query.Get("from"), query.Get("size"))
	if err != nil {
		h.logger.Warn("GET /bookings/owner - Invalid pagination: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidPage)
		return
	}

	result, err := h.service.ListForOwner(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidState):
			h.logger.Warn("GET /bookings/owner - Unknown state: user_id=%d, state=%s", userID, state)
			handlers.RespondBadRequest(w, msgUnknownState+state)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /bookings/owner - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /bookings/owner - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/owner - Bookings retrieved successfully: user_id=%d, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
