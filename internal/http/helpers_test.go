package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/config"
	"hooksaurus/internal/http/handlers"
	"hooksaurus/internal/repos"
)

func testConfig() config.Config {
	return config.Config{
		DBDSN:      ":memory:",
		RateLimit:  1000,
		BodyLimit:  1 << 20,
		CORSOrigin: "http://localhost:8000",
	}
}

// newApp builds the real app over an in-memory store. seed loads the demo rows.
func newApp(t *testing.T, cfg config.Config, seed bool) (*fiber.App, *sqlx.DB) {
	t.Helper()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if seed {
		if err := repos.SeedDemo(t.Context(), db); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	deps := handlers.NewDeps(db)
	deps.AccessLog = io.Discard
	app, err := handlers.NewApp(cfg, deps)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, string(body)
}

func get(t *testing.T, app *fiber.App, path string, partial bool) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if partial {
		req.Header.Set("HX-Request", "true")
	}
	return do(t, app, req)
}

// csrfToken fetches a page to obtain the token cookie.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, _ := get(t, app, "/admin/tables/address/insert", false)
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func postForm(t *testing.T, app *fiber.App, path, tok string, form url.Values, partial bool) (*http.Response, string) {
	t.Helper()
	if tok != "" {
		form.Set("csrf", tok)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if tok != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	}
	if partial {
		req.Header.Set("HX-Request", "true")
	}
	return do(t, app, req)
}

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
