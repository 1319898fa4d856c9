package handlers

import (
	"net/http"
	"testing"
)

func TestCreatePageValidation(t *testing.T) {
	stack := newTestStack(t)

	cases := []struct {
		name   string
		body   map[string]interface{}
		status int
	}{
		{name: "Missing title", body: map[string]interface{}{"kind": "page"}, status: http.StatusBadRequest},
		{name: "Unknown kind", body: map[string]interface{}{"kind": "gallery", "title": "x"}, status: http.StatusBadRequest},
		{name: "Bad slug", body: map[string]interface{}{"kind": "page", "title": "x", "slug": "Not A Slug"}, status: http.StatusBadRequest},
		{name: "Title without slug characters", body: map[string]interface{}{"kind": "page", "title": "!!!"}, status: http.StatusBadRequest},
		{name: "Created", body: map[string]interface{}{"kind": "post", "title": "Hello", "slug": "hello"}, status: http.StatusCreated},
		{name: "Duplicate", body: map[string]interface{}{"kind": "page", "title": "Hello"}, status: http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			expectStatus(t, stack.do(t, http.MethodPost, "/api/v1/admin/pages", tc.body), tc.status)
		})
	}
}

func TestListAndDeletePages(t *testing.T) {
	stack := newTestStack(t)
	expectStatus(t, stack.do(t, http.MethodPost, "/api/v1/admin/pages", map[string]interface{}{"kind": "post", "title": "First"}), http.StatusCreated)
	expectStatus(t, stack.do(t, http.MethodPost, "/api/v1/admin/pages", map[string]interface{}{"kind": "page", "title": "About"}), http.StatusCreated)

	var body struct {
		Pages []struct {
			Slug string `json:"slug"`
		} `json:"pages"`
	}
	posts := stack.do(t, http.MethodGet, "/api/v1/admin/pages?kind=post", nil)
	expectStatus(t, posts, http.StatusOK)
	decode(t, posts, &body)
	if len(body.Pages) != 1 || body.Pages[0].Slug != "first" {
		t.Fatalf("unexpected posts %+v", body.Pages)
	}
	expectStatus(t, stack.do(t, http.MethodGet, "/api/v1/admin/pages?kind=widget", nil), http.StatusBadRequest)

	expectStatus(t, stack.do(t, http.MethodDelete, "/api/v1/admin/pages/about", nil), http.StatusOK)
	expectStatus(t, stack.do(t, http.MethodDelete, "/api/v1/admin/pages/about", nil), http.StatusNotFound)
}

func TestCatalog(t *testing.T) {
	stack := newTestStack(t)

	var body struct {
		Sections []struct {
			Type     string `json:"type"`
			Category string `json:"category"`
		} `json:"sections"`
		Categories []struct {
			Key string `json:"key"`
		} `json:"categories"`
	}
	recorder := stack.do(t, http.MethodGet, "/api/v1/admin/sections/catalog?context=post&category=blog&search=post", nil)
	expectStatus(t, recorder, http.StatusOK)
	decode(t, recorder, &body)
	if len(body.Sections) == 0 || len(body.Categories) != 9 {
		t.Fatalf("unexpected catalog %+v", body)
	}
	for _, entry := range body.Sections {
		if entry.Category != "blog" || entry.Type == "UNKNOWN" {
			t.Fatalf("unexpected entry %+v", entry)
		}
	}

	empty := stack.do(t, http.MethodGet, "/api/v1/admin/sections/catalog?search=zzzz", nil)
	expectStatus(t, empty, http.StatusOK)
	body.Sections = nil
	decode(t, empty, &body)
	if body.Sections == nil || len(body.Sections) != 0 {
		t.Fatalf("expected an empty list, got %+v", body.Sections)
	}

	expectStatus(t, stack.do(t, http.MethodGet, "/api/v1/admin/sections/catalog?category=nope", nil), http.StatusBadRequest)
}

func TestCatalogEntry(t *testing.T) {
	stack := newTestStack(t)

	var body struct {
		Section struct {
			Type           string                 `json:"type"`
			Label          string                 `json:"label"`
			Layout         string                 `json:"layout"`
			DefaultContent map[string]interface{} `json:"defaultContent"`
		} `json:"section"`
	}
	recorder := stack.do(t, http.MethodGet, "/api/v1/admin/sections/catalog/stats", nil)
	expectStatus(t, recorder, http.StatusOK)
	decode(t, recorder, &body)
	if body.Section.Type != "STATS" || body.Section.Label != "Stats" || body.Section.DefaultContent["stats"] == nil {
		t.Fatalf("unexpected entry %+v", body.Section)
	}

	expectStatus(t, stack.do(t, http.MethodGet, "/api/v1/admin/sections/catalog/unknown", nil), http.StatusNotFound)
	expectStatus(t, stack.do(t, http.MethodGet, "/api/v1/admin/sections/catalog/NOPE", nil), http.StatusNotFound)
}

func TestSiteSettingsRoundTrip(t *testing.T) {
	stack := newTestStack(t)

	var body struct {
		Site struct {
			Name       string `json:"name"`
			Navigation []struct {
				Label string `json:"label"`
			} `json:"navigation"`
		} `json:"site"`
	}
	current := stack.do(t, http.MethodGet, "/api/v1/admin/settings/site", nil)
	expectStatus(t, current, http.StatusOK)
	decode(t, current, &body)
	if body.Site.Name != "Acme" {
		t.Fatalf("expected defaults, got %+v", body.Site)
	}

	expectStatus(t, stack.do(t, http.MethodPut, "/api/v1/admin/settings/site", map[string]interface{}{"name": ""}), http.StatusBadRequest)
	expectStatus(t, stack.do(t, http.MethodPut, "/api/v1/admin/settings/site", map[string]interface{}{
		"name":       "Acme Labs",
		"navigation": []map[string]string{{"label": "Blog", "url": "javascript:alert(1)"}},
	}), http.StatusBadRequest)

	updated := stack.do(t, http.MethodPut, "/api/v1/admin/settings/site", map[string]interface{}{
		"name":       "Acme Labs",
		"navigation": []map[string]string{{"label": "Blog", "url": "/blog"}},
	})
	expectStatus(t, updated, http.StatusOK)

	page := stack.do(t, http.MethodGet, "/", nil)
	expectStatus(t, page, http.StatusOK)
	if body := page.Body.String(); !contains(body, "Acme Labs") || !contains(body, `href="/blog"`) {
		t.Fatalf("expected settings in the layout, got %s", body)
	}
}
