package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPRecorder интерфейс сбора HTTP метрик
type HTTPRecorder interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Metrics считает запросы и их длительность по шаблону маршрута
func Metrics(recorder HTTPRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			recorder.ObserveHTTP(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

// routeTemplate шаблон маршрута вместо реального пути, чтобы не раздувать кардинальность
func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
