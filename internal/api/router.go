package api

import (
	"net/http"

	"github.com/gorilla/mux"

	addCommentHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/add_comment"
	approveBookingHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/approve_booking"
	createBookingHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_booking"
	createItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_item"
	createRequestHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_request"
	createUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/create_user"
	deleteItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/delete_item"
	deleteUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/delete_user"
	getBookingHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_booking"
	getItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_item"
	getOwnerBookingsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_owner_bookings"
	getRequestHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_request"
	getUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_user"
	getUserBookingsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/get_user_bookings"
	listAllRequestsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/list_all_requests"
	listCommentsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/list_comments"
	listOwnRequestsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/list_own_requests"
	listOwnerItemsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/list_owner_items"
	listUsersHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/list_users"
	searchItemsHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/search_items"
	updateItemHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/update_item"
	updateUserHandler "github.com/m04kA/SMC-ShareItService/internal/api/handlers/update_user"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	bookingsService "github.com/m04kA/SMC-ShareItService/internal/service/bookings"
	commentsService "github.com/m04kA/SMC-ShareItService/internal/service/comments"
	itemsService "github.com/m04kA/SMC-ShareItService/internal/service/items"
	requestsService "github.com/m04kA/SMC-ShareItService/internal/service/requests"
	usersService "github.com/m04kA/SMC-ShareItService/internal/service/users"
	addCommentUC "github.com/m04kA/SMC-ShareItService/internal/usecase/add_comment"
	createBookingUC "github.com/m04kA/SMC-ShareItService/internal/usecase/create_booking"
	getItemDetailsUC "github.com/m04kA/SMC-ShareItService/internal/usecase/get_item_details"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Services сервисы и use cases, которые обслуживают HTTP API
type Services struct {
	Users    *usersService.Service
	Items    *itemsService.Service
	Bookings *bookingsService.Service
	Requests *requestsService.Service
	Comments *commentsService.Service

	CreateBooking  *createBookingUC.UseCase
	AddComment     *addCommentUC.UseCase
	GetItemDetails *getItemDetailsUC.UseCase
}

// NewRouter регистрирует все маршруты сервера.
// Все маршруты, кроме /users, требуют заголовок X-Sharer-User-Id.
func NewRouter(svc Services, log Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// ============================================================
	// USERS (без аутентификации)
	// ============================================================

	r.HandleFunc("/users", createUserHandler.NewHandler(svc.Users, log).Handle).Methods(http.MethodPost)
	r.HandleFunc("/users", listUsersHandler.NewHandler(svc.Users, log).Handle).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", getUserHandler.NewHandler(svc.Users, log).Handle).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", updateUserHandler.NewHandler(svc.Users, log).Handle).Methods(http.MethodPatch)
	r.HandleFunc("/users/{userId}", deleteUserHandler.NewHandler(svc.Users, log).Handle).Methods(http.MethodDelete)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Sharer-User-Id header)
	// ============================================================

	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Вещи ---
	// /items/search регистрируется раньше /items/{itemId}
	protected.HandleFunc("/items/search", searchItemsHandler.NewHandler(svc.Items, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items", createItemHandler.NewHandler(svc.Items, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/items", listOwnerItemsHandler.NewHandler(svc.Items, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", getItemHandler.NewHandler(svc.GetItemDetails, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/items/{itemId}", updateItemHandler.NewHandler(svc.Items, log).Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/items/{itemId}", deleteItemHandler.NewHandler(svc.Items, log).Handle).Methods(http.MethodDelete)

	// --- Отзывы ---
	protected.HandleFunc("/items/{itemId}/comment", addCommentHandler.NewHandler(svc.AddComment, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/comments", listCommentsHandler.NewHandler(svc.Comments, log).Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBookingHandler.NewHandler(svc.CreateBooking, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookingsHandler.NewHandler(svc.Bookings, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/owner", getOwnerBookingsHandler.NewHandler(svc.Bookings, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBookingHandler.NewHandler(svc.Bookings, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", approveBookingHandler.NewHandler(svc.Bookings, log).Handle).Methods(http.MethodPatch)

	// --- Запросы вещей ---
	protected.HandleFunc("/requests", createRequestHandler.NewHandler(svc.Requests, log).Handle).Methods(http.MethodPost)
	protected.HandleFunc("/requests", listOwnRequestsHandler.NewHandler(svc.Requests, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/all", listAllRequestsHandler.NewHandler(svc.Requests, log).Handle).Methods(http.MethodGet)
	protected.HandleFunc("/requests/{requestId}", getRequestHandler.NewHandler(svc.Requests, log).Handle).Methods(http.MethodGet)

	return r
}
