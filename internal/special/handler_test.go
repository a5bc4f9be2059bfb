package special

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupSpecialRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(repo))
	r.GET("/api/specials", handler.List)
	r.POST("/api/specials", handler.Create)
	r.PUT("/api/specials", handler.Update)
	r.DELETE("/api/specials", handler.Delete)

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSpecial_DefaultsActive(t *testing.T) {
	router := setupSpecialRouter(NewMemoryRepository())

	w := doJSON(t, router, "POST", "/api/specials", map[string]any{
		"name": "Happy Hour",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created Special
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}
	if !created.IsActive {
		t.Fatal("new specials must default to is_active=true")
	}
}

func TestCreateSpecial_MissingName(t *testing.T) {
	router := setupSpecialRouter(NewMemoryRepository())

	w := doJSON(t, router, "POST", "/api/specials", map[string]any{"price": 9})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

// DELETE must deactivate, not remove.
func TestDeleteSpecial_IsSoft(t *testing.T) {
	repo := NewMemoryRepository()
	router := setupSpecialRouter(repo)

	sp := &Special{Name: "Happy Hour", IsActive: true}
	if err := repo.Create(context.Background(), sp); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, "DELETE", "/api/specials", map[string]any{"id": sp.ID})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	specials, _ := repo.List(context.Background())
	if len(specials) != 1 {
		t.Fatalf("soft delete must keep the row, found %d", len(specials))
	}
	if specials[0].IsActive {
		t.Fatal("soft-deleted special must have is_active=false")
	}
}

func TestDeleteSpecial_MissingID(t *testing.T) {
	router := setupSpecialRouter(NewMemoryRepository())

	w := doJSON(t, router, "DELETE", "/api/specials", map[string]any{})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
