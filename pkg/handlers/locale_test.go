package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type localeResponse struct {
	Code string `json:"code"`
	Path string `json:"path"`
}

func TestPreferredLocaleFromAcceptLanguage(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		header string
		want   localeResponse
	}{
		{"", localeResponse{"ja", "/"}},
		{"en-US,en;q=0.9", localeResponse{"en", "/en"}},
		{"ja-JP", localeResponse{"ja", "/"}},
		{"fr-FR", localeResponse{"ja", "/"}},
		{"not a header;;", localeResponse{"ja", "/"}},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/locale", nil)
		if tt.header != "" {
			req.Header.Set("Accept-Language", tt.header)
		}
		w := do(t, r, req)
		var got localeResponse
		decode(t, w, &got)
		if got != tt.want {
			t.Errorf("Accept-Language %q: expected %+v, got %+v", tt.header, tt.want, got)
		}
	}
}

func TestSetPreferredLocale(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, httptest.NewRequest(http.MethodPost, "/api/locale", strings.NewReader(`{"code":"en"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	// The stored preference wins over Accept-Language.
	req := httptest.NewRequest(http.MethodGet, "/api/locale", nil)
	req.Header.Set("Accept-Language", "ja")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	var got localeResponse
	decode(t, do(t, r, req), &got)
	if got.Code != "en" || got.Path != "/en" {
		t.Errorf("expected stored en preference, got %+v", got)
	}
}

func TestSetPreferredLocaleRejectsUnknown(t *testing.T) {
	r := newTestRouter(t)

	for _, body := range []string{`{"code":"fr"}`, `{}`, `not json`} {
		w := do(t, r, httptest.NewRequest(http.MethodPost, "/api/locale", strings.NewReader(body)))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", body, w.Code)
		}
	}
}
