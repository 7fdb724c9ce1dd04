package gateway

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
	"github.com/m04kA/SMC-ShareItService/internal/api/middleware"
	"github.com/m04kA/SMC-ShareItService/internal/integrations/shareitserver"
)

const (
	maxBodyBytes = 1 << 20

	msgUpstreamUnavailable = "сервер ShareIt недоступен"
)

type route struct {
	method   string
	path     string
	auth     bool
	validate validator
}

// routes маршруты сервера. Статические пути объявлены раньше параметризованных.
var routes = []route{
	{method: http.MethodPost, path: "/users", validate: validateCreateUser},
	{method: http.MethodGet, path: "/users"},
	{method: http.MethodGet, path: "/users/{userId}"},
	{method: http.MethodPatch, path: "/users/{userId}", validate: validateUpdateUser},
	{method: http.MethodDelete, path: "/users/{userId}"},

	{method: http.MethodGet, path: "/items/search", auth: true},
	{method: http.MethodPost, path: "/items", auth: true, validate: validateCreateItem},
	{method: http.MethodGet, path: "/items", auth: true},
	{method: http.MethodGet, path: "/items/{itemId}", auth: true},
	{method: http.MethodPatch, path: "/items/{itemId}", auth: true},
	{method: http.MethodDelete, path: "/items/{itemId}", auth: true},
	{method: http.MethodPost, path: "/items/{itemId}/comment", auth: true, validate: validateAddComment},
	{method: http.MethodGet, path: "/comments", auth: true},

	{method: http.MethodPost, path: "/bookings", auth: true, validate: validateCreateBooking},
	{method: http.MethodGet, path: "/bookings", auth: true, validate: validateListBookings},
	{method: http.MethodGet, path: "/bookings/owner", auth: true, validate: validateListBookings},
	{method: http.MethodGet, path: "/bookings/{bookingId}", auth: true},
	{method: http.MethodPatch, path: "/bookings/{bookingId}", auth: true},

	{method: http.MethodPost, path: "/requests", auth: true, validate: validateCreateRequest},
	{method: http.MethodGet, path: "/requests", auth: true},
	{method: http.MethodGet, path: "/requests/all", auth: true},
	{method: http.MethodGet, path: "/requests/{requestId}", auth: true},
}

// Gateway валидирует запросы и пересылает их на сервер
type Gateway struct {
	client       Forwarder
	recorder     UpstreamRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewGateway создает шлюз. recorder может быть nil, если метрики выключены.
func NewGateway(client Forwarder, recorder UpstreamRecorder, logger Logger) *Gateway {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Gateway{
		client:       client,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (g *Gateway) WithTimeProvider(tp TimeProvider) *Gateway {
	g.timeProvider = tp
	return g
}

// Register добавляет маршруты шлюза в роутер
func (g *Gateway) Register(r *mux.Router) {
	for _, rt := range routes {
		r.HandleFunc(rt.path, g.handle(rt)).Methods(rt.method)
	}
}

func (g *Gateway) handle(rt route) http.HandlerFunc {
	op := rt.method + " " + rt.path

	return func(w http.ResponseWriter, r *http.Request) {
		if err := validatePathIDs(mux.Vars(r)); err != nil {
			g.reject(w, op, err)
			return
		}

		userID := r.Header.Get(middleware.UserIDHeader)
		if rt.auth {
			if _, err := middleware.ParseUserID(userID); err != nil {
				g.reject(w, op, invalid(msgInvalidUserHeader))
				return
			}
		}

		body, err := readBody(w, r)
		if err != nil {
			g.reject(w, op, invalid(msgInvalidBody))
			return
		}

		if rt.validate != nil {
			in := &inbound{Query: r.URL.Query(), Body: body, Now: g.timeProvider.Now()}
			if err := rt.validate(in); err != nil {
				g.reject(w, op, err)
				return
			}
		}

		resp, err := g.client.Forward(r.Context(), &shareitserver.Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.Query(),
			Body:      body,
			UserID:    userID,
			RequestID: middleware.GetRequestID(r.Context()),
		})
		if err != nil {
			g.logger.Error("%s - Upstream error: %v", op, err)
			g.recorder.IncUpstreamError()
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamUnavailable)
			return
		}

		copyHeaders(w.Header(), resp.Header)
		if resp.ContentType != "" {
			w.Header().Set("Content-Type", resp.ContentType)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write(resp.Body)
	}
}

// hopByHopHeaders относятся к соединению с сервером и не пересылаются клиенту
var hopByHopHeaders = map[string]struct{}{
	"Connection":          {},
	"Keep-Alive":          {},
	"Proxy-Authenticate":  {},
	"Proxy-Authorization": {},
	"Te":                  {},
	"Trailer":             {},
	"Transfer-Encoding":   {},
	"Upgrade":             {},
}

// copyHeaders переносит заголовки ответа сервера, значения из src заменяют уже выставленные
func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if _, skip := hopByHopHeaders[http.CanonicalHeaderKey(key)]; skip {
			continue
		}
		dst[key] = append([]string(nil), values...)
	}
}

func (g *Gateway) reject(w http.ResponseWriter, op string, err error) {
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		vErr = &ValidationError{Message: msgInvalidBody}
	}
	g.logger.Warn("%s - Rejected: %v", op, err)
	handlers.RespondBadRequest(w, vErr.Message)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}
