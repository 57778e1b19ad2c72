package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dukaan-be/internal/user"
	"dukaan-be/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestCors(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuth(t *testing.T) {
	t.Run("Missing Token", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok, "context should not contain user ID")
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/products", nil)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Invalid Token Proceeds Anonymously", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/products", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Valid Token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		token, err := user.GenerateJWT("user-1", "a@b.com", "customer")
		assert.NoError(t, err)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "user-1", id)
			assert.Equal(t, "a@b.com", utils.GetUserEmailFromContext(r.Context()))
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Anonymous blocked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Authenticated allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/cart", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-1", "a@b.com", "customer"))
		w := httptest.NewRecorder()

		RequireAuth(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type stubRoleChecker struct {
	admins map[string]bool
	err    error
}

func (s *stubRoleChecker) IsAdmin(_ context.Context, userID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.admins[userID], nil
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	roles := &stubRoleChecker{admins: map[string]bool{"user-2": true}}

	t.Run("Customer blocked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/orders", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-1", "a@b.com", "customer"))
		w := httptest.NewRecorder()

		RequireAdmin(roles)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Anonymous unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/orders", nil)
		w := httptest.NewRecorder()

		RequireAdmin(roles)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Admin allowed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin/orders", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-2", "admin@b.com", utils.RoleAdmin))
		w := httptest.NewRecorder()

		RequireAdmin(roles)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Stale admin claim blocked by store check", func(t *testing.T) {
		// Token still says admin, but the role row is gone.
		revoked := &stubRoleChecker{admins: map[string]bool{}}

		req := httptest.NewRequest("GET", "/admin/orders", nil)
		req = req.WithContext(utils.SetUserContext(req.Context(), "user-3", "ex@b.com", utils.RoleAdmin))
		w := httptest.NewRecorder()

		RequireAdmin(revoked)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := RateLimitMiddleware(next)

	t.Run("Strict tier exhausts burst", func(t *testing.T) {
		var lastCode int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
			req.RemoteAddr = "10.1.2.3:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})

	t.Run("General tier allows browsing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/products", nil)
		req.RemoteAddr = "10.9.9.9:1234"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
