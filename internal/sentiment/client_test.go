package sentiment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClassifyReturnsSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/classify" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Comment string `json:"comment"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Comment != "The new clinic has been a huge improvement" {
			t.Errorf("unexpected comment %q", req.Comment)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"summary": "positive"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	summary, err := client.Classify(context.Background(), "The new clinic has been a huge improvement")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if summary != "positive" {
		t.Errorf("expected summary positive, got %q", summary)
	}
}

func TestClassifyFailsOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.Classify(context.Background(), "Roads remain unfinished after two years"); err == nil {
		t.Fatal("expected an error on a 502 response")
	}
}

func TestClassifyFailsOnEmptySummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"summary": ""})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.Classify(context.Background(), "Water supply has improved recently"); err == nil {
		t.Fatal("expected an error on an empty summary")
	}
}

func TestClassifyHonorsContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server notices the client disconnect and
		// cancels the request context; otherwise srv.Close hangs.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := client.Classify(ctx, "Slow classifier should not block submission forever"); err == nil {
		t.Fatal("expected an error when the context deadline passes")
	}
}
