package web

import (
	"encoding/base64"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"blog/internal/database"
)

func newTestApp(t *testing.T) *app {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "blog_test.db"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	quiet := log.New(io.Discard, "", 0)

	return &app{
		infoLog:        quiet,
		errorLog:       quiet,
		HTMLDir:        "../ui/html",
		StaticDir:      "../ui/static",
		Database:       db,
		UserService:    database.NewUserService(db),
		SessionService: database.NewSessionService(db),
		PostService:    database.NewPostService(db),
	}
}

func doPost(t *testing.T, handler http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func get(t *testing.T, handler http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// loginAs регистрирует пользователя через сервис и логинит через HTTP,
// возвращая cookie сессии
func loginAs(t *testing.T, app *app, handler http.Handler, username, email, password string) *http.Cookie {
	t.Helper()

	if _, err := app.UserService.CreateUser(username, email, password); err != nil {
		t.Fatalf("CreateUser(%q): %v", username, err)
	}

	rec := doPost(t, handler, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	expectRedirect(t, rec, "/")

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("login did not set a session cookie")
	return nil
}

func expectRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func flashMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == FlashCookieName && c.Value != "" {
			decoded, err := base64.URLEncoding.DecodeString(c.Value)
			if err != nil {
				t.Fatalf("decode flash cookie: %v", err)
			}
			return string(decoded)
		}
	}
	return ""
}
