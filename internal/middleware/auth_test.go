package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pankajneema/curiousdevs0.1/internal/models"
	"github.com/pankajneema/curiousdevs0.1/internal/security"
)

type stubUsers struct {
	user models.User
	err  error
}

func (s *stubUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	return s.user, s.err
}

type stubRevoker struct {
	revoked bool
	err     error
}

func (s *stubRevoker) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	s.revoked = true
	return nil
}

func (s *stubRevoker) IsRevoked(ctx context.Context, token string) (bool, error) {
	return s.revoked, s.err
}

const testSecret = "auth-test-secret"

func newAuthRouterLogged(users UserLoader, revoker security.TokenRevoker, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(testSecret, users, revoker, log), func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func newAuthRouter(users UserLoader, revoker security.TokenRevoker) *gin.Engine {
	return newAuthRouterLogged(users, revoker, zerolog.Nop())
}

func request(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	users := &stubUsers{user: models.User{ID: "u1", Role: models.UserRoleCustomer}}
	router := newAuthRouter(users, &stubRevoker{})

	token, err := security.GenerateToken(testSecret, "u1", "customer", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	w := request(t, router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200; body %s", w.Code, w.Body.String())
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	router := newAuthRouter(&stubUsers{}, &stubRevoker{})

	if w := request(t, router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", w.Code)
	}
	if w := request(t, router, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer scheme: status = %d, expected 401", w.Code)
	}
}

func TestAuth_BadToken(t *testing.T) {
	router := newAuthRouter(&stubUsers{}, &stubRevoker{})

	if w := request(t, router, "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", w.Code)
	}

	expired, err := security.GenerateToken(testSecret, "u1", "customer", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if w := request(t, router, "Bearer "+expired); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status = %d, expected 401", w.Code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	users := &stubUsers{user: models.User{ID: "u1"}}
	router := newAuthRouter(users, &stubRevoker{revoked: true})

	token, err := security.GenerateToken(testSecret, "u1", "customer", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if w := request(t, router, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", w.Code)
	}
}

func TestAuth_DenylistUnavailable(t *testing.T) {
	users := &stubUsers{user: models.User{ID: "u1"}}
	revoker := &stubRevoker{err: errors.New("connection refused")}

	var logBuf bytes.Buffer
	router := newAuthRouterLogged(users, revoker, zerolog.New(&logBuf))

	token, err := security.GenerateToken(testSecret, "u1", "customer", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	w := request(t, router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200 when the denylist is unreachable", w.Code)
	}
	if !strings.Contains(logBuf.String(), "denylist check failed") {
		t.Errorf("denylist failure was not logged; log output: %s", logBuf.String())
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	users := &stubUsers{err: errors.New("no such user")}
	router := newAuthRouter(users, &stubRevoker{})

	token, err := security.GenerateToken(testSecret, "gone", "customer", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	if w := request(t, router, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, expected 401", w.Code)
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		c.Set("current_user", models.User{ID: "u1", Role: models.UserRoleCustomer})
	}, RequireRoles(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("customer on admin route: status = %d, expected 403", w.Code)
	}
}
