package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-ShareItService/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, повторите позже"

// Limiter решает, можно ли пропустить очередной запрос по ключу
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimitRecorder учитывает отклоненные запросы
type RateLimitRecorder interface {
	IncRateLimited(route string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RateLimit ограничивает частоту запросов по X-Sharer-User-Id (или адресу клиента).
// При ошибке лимитера запрос пропускается.
func RateLimit(limiter Limiter, recorder RateLimitRecorder, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateLimitKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("RateLimit: limiter error for key=%s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}

			if !allowed {
				logger.Warn("RateLimit: too many requests for key=%s", key)
				if recorder != nil {
					recorder.IncRateLimited(routeTemplate(r))
				}
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rateLimitKey(r *http.Request) string {
	if userID := r.Header.Get(UserIDHeader); userID != "" {
		return "user:" + userID
	}
	return "addr:" + r.RemoteAddr
}

// MemoryLimiter token bucket на ключ в памяти процесса.
// Хранит не больше maxKeys ключей, давно не встречавшиеся вытесняются первыми.
type MemoryLimiter struct {
	mu       sync.Mutex
	limiters *lru.Cache[string, *rate.Limiter]
	rps      rate.Limit
	burst    int
}

// NewMemoryLimiter создает лимитер с rps запросов в секунду и всплеском burst
func NewMemoryLimiter(rps float64, burst, maxKeys int) (*MemoryLimiter, error) {
	cache, err := lru.New[string, *rate.Limiter](maxKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to create limiter cache: %w", err)
	}
	return &MemoryLimiter{
		limiters: cache,
		rps:      rate.Limit(rps),
		burst:    burst,
	}, nil
}

// Allow расходует токен ключа
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	limiter, ok := m.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(m.rps, m.burst)
		m.limiters.Add(key, limiter)
	}
	m.mu.Unlock()

	return limiter.Allow(), nil
}

// Len количество ключей, для которых хранится состояние
func (m *MemoryLimiter) Len() int {
	return m.limiters.Len()
}

// RedisLimiter фиксированное окно на ключ в Redis, общее для всех экземпляров шлюза
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// NewRedisLimiter создает лимитер: не более limit запросов за window
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "shareit:ratelimit:",
	}
}

// Allow увеличивает счетчик текущего окна
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := time.Now().UnixNano() / int64(l.window)
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, windowStart)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit: redis: %w", err)
	}

	return incr.Val() <= int64(l.limit), nil
}
