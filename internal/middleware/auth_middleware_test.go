package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campuscare/internal/app/models"
	"github.com/deniz/campuscare/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "campuscare-test",
	})

	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).Authenticate())
	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, role models.RoleType) string {
	t.Helper()
	user := &models.User{ID: 7, Username: "deniz", Role: role}
	accessToken, _, _, _, err := jwtService.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error: %v", err)
	}
	return accessToken
}

func TestLoginRequiredRedirectsAnonymous(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)
	router.GET("/private", m.LoginRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if loc := w.Header().Get("Location"); loc != LoginPath {
		t.Fatalf("redirect location = %q, want %q", loc, LoginPath)
	}
}

func TestLoginRequiredPassesAuthenticated(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)
	router.GET("/private", m.LoginRequired(), func(c *gin.Context) {
		userID, ok := CurrentUserID(c)
		if !ok {
			t.Error("no user ID on context after Authenticate")
		}
		if userID != 7 {
			t.Errorf("userID = %d, want 7", userID)
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleNormal))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestRoleRequiredForbidsAnonymous(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)
	router.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)

	// Role gates are a hard 403, never a redirect
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRoleRequiredForbidsWrongRole(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)
	router.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleStudent))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestRoleRequiredPassesMatchingRole(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)
	router.GET("/admin", m.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, jwtService, models.RoleAdmin))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAuthenticateIgnoresGarbageToken(t *testing.T) {
	router, jwtService := newTestRouter(t)
	m := NewAuthMiddleware(jwtService)
	router.GET("/private", m.LoginRequired(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	// A bad token leaves the request anonymous, so the gate redirects
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusFound)
	}
}

func TestBodyLimitRejectsOversizedPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(BodyLimit(16))
	router.POST("/echo", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	body := make([]byte, 64)
	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	req.Body = http.NoBody
	req.ContentLength = int64(len(body))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
	}
}
