package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vertexit-site/internal/identity"
)

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	f := newFixtures()
	deps := f.deps()
	deps.SessionTTL = time.Hour
	router := mustRouter(t, deps)

	rec := postJSON(router, "/api/v1/auth/login", `{"email":"admin@vertexit.example","password":"s3cret"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"admin@vertexit.example"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, sessionCookie+"=tok-1") {
		t.Fatalf("expected session cookie, got %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("session cookie must be HttpOnly, got %q", cookie)
	}
	if deps.Sessions.Current() == nil {
		t.Fatal("expected optimistic session principal after login")
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newFixtures()
	f.provider.signInErr = identity.ErrInvalidCredentials
	router := mustRouter(t, f.deps())

	rec := postJSON(router, "/api/v1/auth/login", `{"email":"admin@vertexit.example","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"invalid_credentials"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogin_RateLimited(t *testing.T) {
	f := newFixtures()
	f.provider.signInErr = identity.ErrInvalidCredentials
	deps := f.deps()
	deps.LoginAttempts = 2
	router := mustRouter(t, deps)

	body := `{"email":"admin@vertexit.example","password":"wrong"}`
	for i := 0; i < 2; i++ {
		if rec := postJSON(router, "/api/v1/auth/login", body); rec.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected 401, got %d", i, rec.Code)
		}
	}
	rec := postJSON(router, "/api/v1/auth/login", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"too_many_attempts"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	f := newFixtures()
	deps := f.deps()
	router := mustRouter(t, deps)
	deps.Sessions.SetPrincipal(f.provider.principal)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "tok-1"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), "Max-Age=0") {
		t.Fatalf("expected expired cookie, got %q", rec.Header().Get("Set-Cookie"))
	}
	if deps.Sessions.Current() != nil {
		t.Fatal("expected cleared session principal after logout")
	}
}

func TestSession_ReportsState(t *testing.T) {
	f := newFixtures()
	router := mustRouter(t, f.deps())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("expected anonymous session, got %d %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if !strings.Contains(rec.Body.String(), `"authenticated":true`) {
		t.Fatalf("expected authenticated session, got %s", rec.Body.String())
	}
}
