package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BlackVaultEnterprises/table1837-bar-app/internal/auth"
)

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/eighty-sixed", RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestRequireAuth_NoHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/eighty-sixed", nil)
	protectedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/eighty-sixed", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	protectedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := auth.GenerateToken("user-1", "ada@table1837.test", "staff")
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/eighty-sixed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	protectedRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
