package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, даты ожидаются в формате YYYY-MM-DDTHH:MM:SS"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "ID вещи, начало и конец бронирования обязательны"
	msgInvalidPeriod      = "некорректный период бронирования"
	msgItemNotAvailable   = "вещь недоступна для бронирования"
	msgUserNotFound       = "пользователь не найден"
	msgItemNotFound       = "вещь не найдена"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrItemNotAvailable):
			h.logger.Warn("POST /bookings - Item not available: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgItemNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidPeriod):
			h.logger.Warn("POST /bookings - Invalid period: user_id=%d, item_id=%d, error=%v", userID, req.ItemID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, item_id=%d, error=%v",
				userID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, item_id=%d",
		result.ID, userID, req.ItemID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
