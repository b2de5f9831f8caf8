package app

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"govhub/api/internal/search"
	"govhub/api/internal/store"
)

func performJSON(t *testing.T, handler http.Handler, method, path string, body any, bearer string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	payload := map[string]any{}
	if rec.Body.Len() > 0 {
		var decoded any
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
		if m, ok := decoded.(map[string]any); ok {
			payload = m
		}
	}
	return rec, payload
}

func tokenFor(t *testing.T, svc *Service, fs *fakeStore, user store.User) string {
	t.Helper()
	fs.getUserByIDFn = func(_ context.Context, id string) (store.User, error) {
		if id == user.ID {
			return user, nil
		}
		return store.User{}, sql.ErrNoRows
	}
	session, err := svc.CreateSession(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return session.Token
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, payload map[string]any, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	if payload["code"] != code {
		t.Fatalf("expected code %s, got %v", code, payload["code"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := NewHTTPServer(newTestService(&fakeStore{}), "*").Handler()
	rec, payload := performJSON(t, handler, http.MethodGet, "/api/health", nil, "")
	if rec.Code != http.StatusOK || payload["ok"] != true {
		t.Fatalf("expected healthy response, got %d %v", rec.Code, payload)
	}
}

func TestPreflightHasNoBody(t *testing.T) {
	handler := NewHTTPServer(newTestService(&fakeStore{}), "https://nigeriagovhub.ng").Handler()
	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("204 response must not carry a body, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://nigeriagovhub.ng" {
		t.Errorf("preflight missing CORS origin header, got %q", got)
	}
}

func TestSearchEndpoint(t *testing.T) {
	fs := &fakeStore{
		searchProjectsFn: func(_ context.Context, q string, limit int) ([]store.Project, error) {
			if q != "lagos" {
				t.Errorf("expected query lagos, got %q", q)
			}
			if limit != search.PerTypeLimit {
				t.Errorf("expected per-type limit %d, got %d", search.PerTypeLimit, limit)
			}
			return []store.Project{{ID: "prj_1", Title: "Lagos Light Rail", CreatedAt: time.Now()}}, nil
		},
	}
	handler := NewHTTPServer(newTestService(fs), "*").Handler()

	rec, payload := performJSON(t, handler, http.MethodGet, "/api/search?q=lagos", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if payload["totalCount"] != float64(1) {
		t.Errorf("expected totalCount 1, got %v", payload["totalCount"])
	}
	results, ok := payload["results"].([]any)
	if !ok || len(results) != 1 {
		t.Fatalf("expected one result, got %v", payload["results"])
	}
	hit := results[0].(map[string]any)
	if hit["type"] != "project" || hit["id"] != "prj_1" {
		t.Errorf("unexpected hit: %v", hit)
	}
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	fs := &fakeStore{
		searchProjectsFn: func(context.Context, string, int) ([]store.Project, error) {
			t.Error("empty query must not hit the store")
			return nil, nil
		},
	}
	handler := NewHTTPServer(newTestService(fs), "*").Handler()

	rec, payload := performJSON(t, handler, http.MethodGet, "/api/search?q=++", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if payload["totalCount"] != float64(0) {
		t.Errorf("expected totalCount 0, got %v", payload["totalCount"])
	}
}

func TestBookmarkRequiresSession(t *testing.T) {
	handler := NewHTTPServer(newTestService(&fakeStore{}), "*").Handler()
	rec, payload := performJSON(t, handler, http.MethodPost, "/api/projects/prj_1/bookmark", nil, "")
	assertErrorCode(t, rec, payload, http.StatusUnauthorized, "UNAUTHORIZED")
}

func TestBookmarkToggleRoute(t *testing.T) {
	fs := &fakeStore{
		getProjectFn: existingProject("prj_1"),
		toggleBookmarkFn: func(_ context.Context, userID, projectID string) (string, error) {
			if userID != "usr_1" || projectID != "prj_1" {
				t.Errorf("unexpected toggle args %q %q", userID, projectID)
			}
			return "added", nil
		},
	}
	svc := newTestService(fs)
	handler := NewHTTPServer(svc, "*").Handler()
	token := tokenFor(t, svc, fs, store.User{ID: "usr_1", Name: "Amina", Role: "user"})

	rec, payload := performJSON(t, handler, http.MethodPost, "/api/projects/prj_1/bookmark", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if payload["action"] != "added" {
		t.Errorf("expected action added, got %v", payload["action"])
	}
}

func TestWriteRoutesForbiddenForUserRole(t *testing.T) {
	fs := &fakeStore{}
	svc := newTestService(fs)
	handler := NewHTTPServer(svc, "*").Handler()
	token := tokenFor(t, svc, fs, store.User{ID: "usr_1", Name: "Amina", Role: "user"})

	rec, payload := performJSON(t, handler, http.MethodPost, "/api/projects", ProjectInput{Title: "New Road"}, token)
	assertErrorCode(t, rec, payload, http.StatusForbidden, "FORBIDDEN")
}

func TestAdminUsersRoute(t *testing.T) {
	fs := &fakeStore{
		listUsersFn: func(context.Context) ([]store.User, error) {
			return []store.User{{ID: "usr_1", Name: "Amina", Email: "amina@example.ng", Role: "user"}}, nil
		},
	}
	svc := newTestService(fs)
	handler := NewHTTPServer(svc, "*").Handler()

	userToken := tokenFor(t, svc, fs, store.User{ID: "usr_1", Name: "Amina", Role: "user"})
	rec, payload := performJSON(t, handler, http.MethodGet, "/api/admin/users", nil, userToken)
	assertErrorCode(t, rec, payload, http.StatusForbidden, "FORBIDDEN")

	adminToken := tokenFor(t, svc, fs, store.User{ID: "usr_adm", Name: "Root", Role: "admin"})
	rec, _ = performJSON(t, handler, http.MethodGet, "/api/admin/users", nil, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAnonymousFeedbackRoute(t *testing.T) {
	var saved store.Feedback
	fs := &fakeStore{
		getProjectFn: existingProject("prj_1"),
		insertFeedbackFn: func(_ context.Context, f store.Feedback) error {
			saved = f
			return nil
		},
	}
	svc := newTestService(fs)
	handler := NewHTTPServer(svc, "*").Handler()

	rec, payload := performJSON(t, handler, http.MethodPost, "/api/projects/prj_1/feedback", FeedbackInput{
		UserName: "Chidi",
		Comment:  "The borehole project changed our community",
		Rating:   intPtr(5),
	}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if payload["sentimentSummary"] == nil || payload["sentimentSummary"] == "" {
		t.Error("response should include the sentiment summary")
	}
	if saved.UserID != nil {
		t.Error("anonymous feedback must not carry a user ID")
	}
	if payload["rating"] != float64(5) {
		t.Errorf("expected rating 5, got %v", payload["rating"])
	}
}

func TestFeedbackValidationRoute(t *testing.T) {
	fs := &fakeStore{getProjectFn: existingProject("prj_1")}
	handler := NewHTTPServer(newTestService(fs), "*").Handler()

	rec, payload := performJSON(t, handler, http.MethodPost, "/api/projects/prj_1/feedback", FeedbackInput{
		UserName: "C",
		Comment:  "short",
	}, "")
	assertErrorCode(t, rec, payload, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	details, ok := payload["details"].([]any)
	if !ok || len(details) != 2 {
		t.Fatalf("expected two validation problems, got %v", payload["details"])
	}
}

func TestGetArticleRouteAnonymous(t *testing.T) {
	fs := &fakeStore{
		getArticleBySlugFn: func(context.Context, string) (store.NewsArticle, error) {
			return store.NewsArticle{ID: "art_1", Slug: "budget-2026", Title: "2026 Budget"}, nil
		},
		articleLikeCountFn: func(context.Context, string) (int, error) { return 4, nil },
		hasLikedFn: func(context.Context, string, string) (bool, error) {
			t.Error("anonymous reads must not check likes")
			return false, nil
		},
	}
	handler := NewHTTPServer(newTestService(fs), "*").Handler()

	rec, payload := performJSON(t, handler, http.MethodGet, "/api/articles/budget-2026", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if payload["likeCount"] != float64(4) {
		t.Errorf("expected likeCount 4, got %v", payload["likeCount"])
	}
	if payload["viewerHasLiked"] != false {
		t.Errorf("expected viewerHasLiked false, got %v", payload["viewerHasLiked"])
	}
}

func TestUnknownRouteNotFound(t *testing.T) {
	handler := NewHTTPServer(newTestService(&fakeStore{}), "*").Handler()
	rec, payload := performJSON(t, handler, http.MethodGet, "/api/nope", nil, "")
	assertErrorCode(t, rec, payload, http.StatusNotFound, "NOT_FOUND")
}
