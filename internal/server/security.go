package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/tamilpanchangam/panchangam/internal/logger"
)

// isPublicPath reports whether the path is served without an API key.
func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// AuthMiddleware guards every non-public route behind the single service
// API key. Comparison is constant time, and failures feed the abuse
// detector so repeated guessing from one address raises an alert.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			detector.NoteAuthFailure(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip,
				"path", r.URL.Path,
				"key_present", provided != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

// RequestSizeLimitMiddleware caps request body size; oversized bodies fail
// on read inside the handler.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects requests from addresses over the windowed
// rate limit before they reach routing.
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector keeps windowed per-address counters for the
// two abuse patterns an API-key service can see: key guessing and request
// flooding.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	counters    map[string]*ipCounter
	windowStart time.Time
}

type ipCounter struct {
	authFailures int
	requests     int
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		counters:    make(map[string]*ipCounter),
		windowStart: time.Now(),
	}
}

// NoteAuthFailure counts a failed key check and alerts once the address
// crosses the threshold within the current window.
func (d *SuspiciousActivityDetector) NoteAuthFailure(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.counter(ip)
	c.authFailures++
	if c.authFailures >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "failures", c.authFailures)
	}
}

// Allow counts a request and reports whether the address is still under the
// rate limit. Blocked traffic is logged every RateLimitLogEvery requests to
// keep a flood from flooding the log too.
func (d *SuspiciousActivityDetector) Allow(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.counter(ip)
	c.requests++
	if c.requests <= RateLimitMaxRequests {
		return true
	}
	if c.requests%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "requests_in_window", c.requests)
	}
	return false
}

// counter rolls the window when it has lapsed and returns the address's
// counter. Caller holds the mutex.
func (d *SuspiciousActivityDetector) counter(ip string) *ipCounter {
	if time.Since(d.windowStart) > RateLimitWindow {
		d.counters = make(map[string]*ipCounter)
		d.windowStart = time.Now()
	}
	c := d.counters[ip]
	if c == nil {
		c = &ipCounter{}
		d.counters[ip] = c
	}
	return c
}

// clientIP resolves the caller's address. X-Forwarded-For is honored only
// when the direct peer is a configured trusted proxy, and then the
// rightmost entry wins since that is the hop the proxy itself saw.
func clientIP(r *http.Request, trustedProxies []string) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, host) {
		return host
	}
	if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
		hops := strings.Split(forwarded, ",")
		return strings.TrimSpace(hops[len(hops)-1])
	}
	return host
}

// SecurityHeadersMiddleware stamps the standard browser-protection headers
// on every response.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}