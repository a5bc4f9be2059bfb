package eightysix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/eighty-sixed", NewHandler(repo).List)
	return r
}

func TestListEightySixed_NewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Append(ctx, "Malbec", "wine", nil); err != nil {
		t.Fatal(err)
	}
	if err := repo.Append(ctx, "Mule", "cocktail", nil); err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/eighty-sixed", nil)
	newTestRouter(repo).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].ItemName != "Mule" {
		t.Fatalf("expected newest entry first, got %q", items[0].ItemName)
	}
}

func TestListEightySixed_Empty(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/eighty-sixed", nil)
	newTestRouter(NewMemoryRepository()).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var items []Item
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty log, got %d entries", len(items))
	}
}
