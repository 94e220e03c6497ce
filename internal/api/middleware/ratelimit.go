package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

const (
	msgTooManyRequests = "too many requests, please try again later"

	limiterCleanupInterval = 5 * time.Minute
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничитель запросов по IP клиента
type RateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	entryTTL    time.Duration
	entries     map[string]*limiterEntry
	lastCleanup time.Time
	now         func() time.Time

	trustedProxyHops int
}

// NewRateLimiter разрешает requests запросов за window на один IP.
// trustedProxyHops - число прокси перед сервисом, которым можно верить в X-Forwarded-For
func NewRateLimiter(requests int, window time.Duration, trustedProxyHops int) *RateLimiter {
	ttl := window
	if ttl < limiterCleanupInterval {
		ttl = limiterCleanupInterval
	}

	return &RateLimiter{
		limit:       rate.Every(window / time.Duration(requests)),
		burst:       requests,
		entryTTL:    ttl,
		entries:     make(map[string]*limiterEntry),
		lastCleanup: time.Now(),
		now:         time.Now,

		trustedProxyHops: trustedProxyHops,
	}
}

// Allow проверяет, можно ли пропустить запрос с ключом key
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.Sub(rl.lastCleanup) >= limiterCleanupInterval {
		for k, entry := range rl.entries {
			if now.Sub(entry.lastSeen) > rl.entryTTL {
				delete(rl.entries, k)
			}
		}
		rl.lastCleanup = now
	}

	entry, ok := rl.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.entries[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// Middleware отвечает 429 при превышении лимита
func (rl *RateLimiter) Middleware(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r, rl.trustedProxyHops)
			if !rl.Allow(ip) {
				logger.Warn("%s %s - Rate limit exceeded: ip=%s", r.Method, r.URL.Path, ip)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP адрес клиента. Без доверенных прокси берется адрес соединения.
// С trustedHops прокси адрес берется из X-Forwarded-For на trustedHops позиций
// правее конца цепочки: левые записи клиент может подставить сам
func ClientIP(r *http.Request, trustedHops int) string {
	remote := remoteHost(r)
	if trustedHops <= 0 {
		return remote
	}

	var chain []string
	for _, values := range r.Header.Values("X-Forwarded-For") {
		for _, part := range strings.Split(values, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				chain = append(chain, ip)
			}
		}
	}
	chain = append(chain, remote)

	idx := len(chain) - 1 - trustedHops
	if idx < 0 {
		idx = 0
	}
	return chain[idx]
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
