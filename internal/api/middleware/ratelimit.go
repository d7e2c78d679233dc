package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-AmenityBooking/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// RateLimiter ограничитель запросов на клиента (in-memory token bucket)
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает ограничитель
// rps - запросов в секунду, burst - максимальный всплеск, ttl - время жизни неактивного клиента
func NewRateLimiter(rps float64, burst int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Allow проверяет, можно ли выполнить запрос клиента
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()

	return v.limiter.Allow()
}

// Cleanup удаляет неактивных клиентов раз в interval до закрытия stop
func (rl *RateLimiter) Cleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rl.evict()
		}
	}
}

func (rl *RateLimiter) evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > rl.ttl {
			delete(rl.visitors, key)
		}
	}
}

// RateLimit ограничивает запросы по пользователю (после Auth) или по IP
func RateLimit(rl *RateLimiter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(clientKey(r)) {
				w.Header().Set("Retry-After", "1")
				handlers.RespondError(w, http.StatusTooManyRequests, handlers.CodeRateLimited, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if userID, ok := GetUserID(r.Context()); ok {
		return "user:" + strconv.FormatInt(userID, 10)
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip, _, _ := strings.Cut(forwarded, ",")
		return "ip:" + strings.TrimSpace(ip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return "ip:" + r.RemoteAddr
	}
	return "ip:" + host
}
