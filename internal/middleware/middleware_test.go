package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"supplydesk/internal/logger"
	"supplydesk/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCors(t *testing.T) {
	handler := CORS(okHandler())

	t.Run("OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api?action=login", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("OPTIONS does not reach handler", func(t *testing.T) {
		called := false
		h := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodOptions, "/api", nil))
		assert.False(t, called)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api?action=products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Max-Age"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuth(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := ClaimsFromContext(r.Context())
			assert.False(t, ok, "context should not carry claims")
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		AuthMiddleware(testSecret)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		AuthMiddleware(testSecret)(http.NotFoundHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String())
	})

	t.Run("Valid Token", func(t *testing.T) {
		tokenString, err := user.GenerateJWT(testSecret, user.User{ID: 7, Username: "ann"}, time.Now())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, int64(7), claims.UserID)
			assert.Equal(t, user.RoleEmployee, claims.Role)
			w.WriteHeader(http.StatusOK)
		})

		AuthMiddleware(testSecret)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		tokenString, err := user.GenerateJWT(testSecret, user.User{ID: 7}, time.Now().Add(-24*time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		w := httptest.NewRecorder()

		AuthMiddleware(testSecret)(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("No secret configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api", nil)
		req.Header.Set("Authorization", "Bearer anything")
		w := httptest.NewRecorder()

		AuthMiddleware("")(okHandler()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	t.Run("Strict tier on login", func(t *testing.T) {
		rl := NewRateLimiter()
		handler := rl.Middleware(okHandler())

		codes := make([]int, 0, burstStrict+1)
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api?action=login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		for i := 0; i < burstStrict; i++ {
			assert.Equal(t, http.StatusOK, codes[i])
		}
		assert.Equal(t, http.StatusTooManyRequests, codes[burstStrict])
	})

	t.Run("Tiers are separate quotas", func(t *testing.T) {
		rl := NewRateLimiter()
		handler := rl.Middleware(okHandler())

		for i := 0; i < burstStrict; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api?action=login", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest(http.MethodGet, "/api?action=products", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Authenticated callers keyed by user", func(t *testing.T) {
		tokenString, err := user.GenerateJWT(testSecret, user.User{ID: 9}, time.Now())
		require.NoError(t, err)

		rl := NewRateLimiter()
		handler := AuthMiddleware(testSecret)(rl.Middleware(okHandler()))

		req := httptest.NewRequest(http.MethodGet, "/api?action=orders", nil)
		req.Header.Set("Authorization", "Bearer "+tokenString)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		rl.mu.Lock()
		_, ok := rl.visitors["user:9:general"]
		rl.mu.Unlock()
		assert.True(t, ok)
	})

	t.Run("Cleanup drops idle visitors", func(t *testing.T) {
		rl := NewRateLimiter()
		rl.getVisitor("ip:old:general", limitGeneral, burstGeneral)
		rl.getVisitor("ip:new:general", limitGeneral, burstGeneral)
		rl.visitors["ip:old:general"].lastSeen = time.Now().Add(-time.Hour)

		rl.Cleanup(visitorTTL)

		assert.NotContains(t, rl.visitors, "ip:old:general")
		assert.Contains(t, rl.visitors, "ip:new:general")
	})
}

func TestAuthAddsUserIDToLogContext(t *testing.T) {
	tokenString, err := user.GenerateJWT(testSecret, user.User{ID: 3}, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := logger.UserIDFrom(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(3), id)
	})

	AuthMiddleware(testSecret)(next).ServeHTTP(httptest.NewRecorder(), req)
}
