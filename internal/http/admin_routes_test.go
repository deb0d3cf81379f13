package handlers_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"hooksaurus/internal/domain"
	"hooksaurus/internal/repos"
)

func TestListingFragmentAndFullPageShareMarkup(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)

	fullResp, full := get(t, app, "/admin/tables/address?perPage=2", false)
	partResp, part := get(t, app, "/admin/tables/address?perPage=2", true)
	if fullResp.StatusCode != http.StatusOK || partResp.StatusCode != http.StatusOK {
		t.Fatalf("status full=%d partial=%d", fullResp.StatusCode, partResp.StatusCode)
	}
	if strings.Contains(part, "<html") || !strings.Contains(full, "<html") {
		t.Fatal("partial request should get the bare fragment, full request the page")
	}
	if !strings.Contains(full, strings.TrimSpace(part)) {
		t.Fatalf("fragment is not contained in the full page\nfragment:\n%s\nfull:\n%s", part, full)
	}
	if !strings.Contains(partResp.Header.Get("Vary"), "HX-Request") {
		t.Fatalf("Vary header missing HX-Request: %q", partResp.Header.Get("Vary"))
	}

	nav := parse(t, full).Find("#admin-nav a")
	if nav.Length() != 9 || nav.Eq(1).Text() != "Address" || nav.Last().Text() != "User" {
		t.Fatalf("nav should list every table in order, got %d links", nav.Length())
	}
}

func TestListingPaginates(t *testing.T) {
	app, db := newApp(t, testConfig(), false)
	r := repos.NewAddressRepo(db)
	for i := 0; i < 5; i++ {
		a := domain.Address{StreetAddress1: fmt.Sprintf("%d Main St", i), City: "Town", StateProvinceCounty: "ST"}
		if err := r.Insert(context.Background(), &a); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	resp, body := get(t, app, "/admin/tables/address?page=0&perPage=2", true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	doc := parse(t, body)
	if n := doc.Find("tr.record-row").Length(); n != 2 {
		t.Fatalf("want 2 rows, got %d", n)
	}
	next := doc.Find("a.next-page").AttrOr("hx-get", "")
	if next != "/admin/tables/address?page=1&perPage=2" {
		t.Fatalf("next page link %q", next)
	}

	_, body = get(t, app, "/admin/tables/address?page=9&perPage=2", true)
	doc = parse(t, body)
	if doc.Find("tr.record-row").Length() != 0 || doc.Find("tr.empty").Length() != 1 {
		t.Fatal("paging past the end should render an empty table")
	}

	_, body = get(t, app, "/admin/tables/address?page=x&perPage=-4", true)
	if n := parse(t, body).Find("tr.record-row").Length(); n != 5 {
		t.Fatalf("invalid paging should fall back to the default window, got %d rows", n)
	}
}

func TestUnknownKindIs404(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	for _, path := range []string{
		"/admin/tables/bogus",
		"/admin/tables/ADDRESS",
		"/admin/tables/User",
		"/admin/tables/bogus/insert",
		"/admin/tables/bogus/6f1c2f0e-8d5a-4c8e-9a53-1b2f3c4d5e6f",
		"/admin/tables/address/not-a-key",
		"/no/such/page",
	} {
		resp, body := get(t, app, path, false)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: want 404, got %d", path, resp.StatusCode)
		}
		if parse(t, body).Find("#error").Length() != 1 {
			t.Fatalf("%s: error page not rendered: %s", path, body)
		}
	}
}

func TestTodoKindInsertIs501(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	resp, body := get(t, app, "/admin/tables/article/insert", true)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("want 501, got %d", resp.StatusCode)
	}
	if strings.TrimSpace(body) == "" || !strings.Contains(body, "not available") {
		t.Fatalf("501 should explain itself, got %q", body)
	}

	for _, pk := range []string{"not-a-uuid", "6f1c2f0e-8d5a-4c8e-9a53-1b2f3c4d5e6f"} {
		resp, _ = get(t, app, "/admin/tables/article/"+pk, true)
		if resp.StatusCode != http.StatusNotImplemented {
			t.Fatalf("article detail %s: want 501, got %d", pk, resp.StatusCode)
		}
	}

	resp, _ = get(t, app, "/admin/tables/article", true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("article listing should still work, got %d", resp.StatusCode)
	}
}

func TestInsertThenListShowsNewRow(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	tok := csrfToken(t, app)

	form := url.Values{}
	form.Set("street_address1", "77 Sunset Blvd")
	form.Set("city", "Los Angeles")
	form.Set("state_province_county", "CA")
	form.Set("postal_code", "90028")
	form.Set("latitude", "34.09")
	form.Set("etag", "")
	resp, body := postForm(t, app, "/admin/tables/address/insert", tok, form, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("insert status %d: %s", resp.StatusCode, body)
	}
	want := "77 Sunset Blvd, Los Angeles, CA, 90028"
	if got := parse(t, body).Find("tr.record-row a").First().Text(); got != want {
		t.Fatalf("insert response should list the new row first, got %q", got)
	}
	if resp.Header.Get("HX-Push-Url") != "/admin/tables/address" {
		t.Fatalf("push url %q", resp.Header.Get("HX-Push-Url"))
	}

	_, body = get(t, app, "/admin/tables/address", false)
	if !strings.Contains(body, want) {
		t.Fatal("new row missing from a fresh listing")
	}

	href := parse(t, body).Find("tr.record-row a").First().AttrOr("href", "")
	resp, body = get(t, app, href, true)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("detail %s: %d", href, resp.StatusCode)
	}
	doc := parse(t, body)
	if v := doc.Find(`input[name="latitude"]`).AttrOr("value", ""); v != "34.09" {
		t.Fatalf("detail form latitude %q", v)
	}
	if v := doc.Find(`input[name="street_address2"]`).AttrOr("value", "x"); v != "" {
		t.Fatalf("absent value should render blank, got %q", v)
	}
	if doc.Find(`input[name="etag"]`).AttrOr("value", "") == "" {
		t.Fatal("detail form should carry the etag")
	}
}

func TestInsertValidationRerendersForm(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	tok := csrfToken(t, app)

	form := url.Values{}
	form.Set("title", "Winter Gala")
	form.Set("description", "Cold but fun")
	form.Set("start_date", "2026-12-10T18:00")
	form.Set("end_date", "2026-12-01T18:00")
	resp, body := postForm(t, app, "/admin/tables/auction/insert", tok, form, true)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", resp.StatusCode)
	}
	doc := parse(t, body)
	if v := doc.Find(`input[name="title"]`).AttrOr("value", ""); v != "Winter Gala" {
		t.Fatalf("submitted title not kept: %q", v)
	}
	if !strings.Contains(doc.Find(".field-error").Text(), "end_date must not be before the start") {
		t.Fatalf("window error missing: %s", body)
	}
	if doc.Find(`input[name="csrf"]`).AttrOr("value", "") != tok {
		t.Fatal("re-rendered form lost the csrf token")
	}
}

func TestInsertDuplicateEmailIs422(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	tok := csrfToken(t, app)

	form := url.Values{}
	form.Set("email", "RUTH@hooksaurus.test")
	form.Set("username", "ruth2")
	form.Set("role", "USER")
	form.Set("password", "long enough")
	resp, body := postForm(t, app, "/admin/tables/user/insert", tok, form, true)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("want 422, got %d", resp.StatusCode)
	}
	if !strings.Contains(parse(t, body).Find(".field-error").Text(), "already registered") {
		t.Fatalf("email error missing: %s", body)
	}
}

func TestInsertWithoutCSRFIsForbidden(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	form := url.Values{}
	form.Set("street_address1", "1 Nowhere")
	resp, _ := postForm(t, app, "/admin/tables/address/insert", "", form, false)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403, got %d", resp.StatusCode)
	}
}

func TestInsertFormMatchesDetailForm(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)

	_, body := get(t, app, "/admin/tables/organization", true)
	href := parse(t, body).Find("tr.record-row a").First().AttrOr("href", "")

	names := func(body string) string {
		var out []string
		parse(t, body).Find("form [name]").Each(func(_ int, s *goquery.Selection) {
			out = append(out, s.AttrOr("name", ""))
		})
		return strings.Join(out, ",")
	}
	_, empty := get(t, app, "/admin/tables/organization/insert", true)
	_, filled := get(t, app, href, true)
	if names(empty) != names(filled) {
		t.Fatalf("input names differ:\n%s\n%s", names(empty), names(filled))
	}
}

func TestDetailFormSubmitsWithoutHTMX(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	tok := csrfToken(t, app)

	_, body := get(t, app, "/admin/tables/address", true)
	href := parse(t, body).Find("tr.record-row a").First().AttrOr("href", "")
	_, body = get(t, app, href, false)
	form := parse(t, body).Find("#record-form form")
	if form.AttrOr("method", "") != "post" || form.AttrOr("action", "") != href {
		t.Fatalf("detail form method=%q action=%q, want post %s",
			form.AttrOr("method", ""), form.AttrOr("action", ""), href)
	}

	resp, _ := postForm(t, app, href, tok, url.Values{"street_address1": {"2 Barn Lane"}}, false)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("plain post to record: want 501, got %d", resp.StatusCode)
	}
}

func TestUpdateAndDeleteAre501(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)
	tok := csrfToken(t, app)
	pk := "6f1c2f0e-8d5a-4c8e-9a53-1b2f3c4d5e6f"

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/admin/tables/address/"+pk, nil)
		req.Header.Set("X-CSRF-Token", tok)
		req.Header.Set("HX-Request", "true")
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
		resp, _ := do(t, app, req)
		if resp.StatusCode != http.StatusNotImplemented {
			t.Fatalf("%s: want 501, got %d", method, resp.StatusCode)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/admin/tables/bogus/"+pk, nil)
	req.Header.Set("X-CSRF-Token", tok)
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	if resp, _ := do(t, app, req); resp.StatusCode != http.StatusNotFound {
		t.Fatalf("delete on unknown table: want 404, got %d", resp.StatusCode)
	}
}

func TestAdminLandingAndTables(t *testing.T) {
	app, _ := newApp(t, testConfig(), true)

	resp, body := get(t, app, "/admin", false)
	if resp.StatusCode != http.StatusOK || parse(t, body).Find("#admin-home").Length() != 1 {
		t.Fatalf("admin landing: %d", resp.StatusCode)
	}

	_, body = get(t, app, "/admin/tables", true)
	links := parse(t, body).Find("#table-list a")
	if links.Length() != 8 || links.First().AttrOr("href", "") != "/admin/tables/address" {
		t.Fatalf("table list: %d links", links.Length())
	}
	if links.Eq(3).Text() != "Auction Item" {
		t.Fatalf("labels: %q", links.Eq(3).Text())
	}
}

func TestHealthAndStatic(t *testing.T) {
	app, _ := newApp(t, testConfig(), false)

	if resp, body := get(t, app, "/health", false); resp.StatusCode != 200 || body != "ok" {
		t.Fatalf("health: %d %q", resp.StatusCode, body)
	}
	if resp, body := get(t, app, "/healthz", false); resp.StatusCode != 200 || !strings.Contains(body, `"db":"up"`) {
		t.Fatalf("healthz: %d %q", resp.StatusCode, body)
	}
	if resp, body := get(t, app, "/static/app.css", false); resp.StatusCode != 200 || !strings.Contains(body, "#admin-main") {
		t.Fatalf("static: %d", resp.StatusCode)
	}
	if resp, _ := get(t, app, "/", false); resp.StatusCode != 200 {
		t.Fatalf("index: %d", resp.StatusCode)
	}
}
