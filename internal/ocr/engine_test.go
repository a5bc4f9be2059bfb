package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestRecognize_RejectsPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.7 fake document"))
	}))
	defer srv.Close()

	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	if _, err := eng.Recognize(context.Background(), srv.URL); err == nil {
		t.Fatal("PDF payloads must be rejected")
	}
}

func TestRecognize_EmptyURL(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	if _, err := eng.Recognize(context.Background(), ""); err == nil {
		t.Fatal("empty URL must fail")
	}
}

func TestRecognize_FetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	defer eng.Close()

	if _, err := eng.Recognize(context.Background(), srv.URL); err == nil {
		t.Fatal("non-200 image fetch must fail")
	}
}

func TestClose_RemovesScratchDir(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	dir := eng.workDir

	if err := eng.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("scratch dir %s should be gone after Close", dir)
	}
}
