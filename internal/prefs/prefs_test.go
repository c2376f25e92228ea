package prefs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"Tunelab/internal/auth"
	"Tunelab/internal/repo"
)

type failingRepo struct{}

func (failingRepo) GetTheme(context.Context, string) (repo.Theme, error) {
	return "", errors.New("connection refused")
}

func (failingRepo) SetTheme(context.Context, string, repo.Theme) error {
	return errors.New("connection refused")
}

func request(method, body, clientID string) *http.Request {
	req := httptest.NewRequest(method, "/api/prefs/theme", bytes.NewBufferString(body))
	if clientID != "" {
		req = req.WithContext(auth.WithClientID(req.Context(), clientID))
	}
	return req
}

func decodeTheme(t *testing.T, w *httptest.ResponseRecorder) repo.Theme {
	t.Helper()
	var resp ThemeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.Theme
}

func TestThemeRoundTrip(t *testing.T) {
	h := &PrefsHandler{Repo: repo.NewMemoryPrefs()}

	w := httptest.NewRecorder()
	h.GetTheme(w, request(http.MethodGet, "", "c1"))
	if got := decodeTheme(t, w); got != repo.ThemeSystem {
		t.Errorf("initial theme = %q", got)
	}

	w = httptest.NewRecorder()
	h.UpdateTheme(w, request(http.MethodPut, `{"theme": "dark"}`, "c1"))
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	h.GetTheme(w, request(http.MethodGet, "", "c1"))
	if got := decodeTheme(t, w); got != repo.ThemeDark {
		t.Errorf("theme = %q, want dark", got)
	}

	w = httptest.NewRecorder()
	h.GetTheme(w, request(http.MethodGet, "", "c2"))
	if got := decodeTheme(t, w); got != repo.ThemeSystem {
		t.Errorf("other client theme = %q", got)
	}
}

func TestUpdateTheme_Errors(t *testing.T) {
	h := &PrefsHandler{Repo: repo.NewMemoryPrefs()}
	tests := []struct {
		name     string
		body     string
		clientID string
		code     int
	}{
		{"bad json", `{theme}`, "c1", http.StatusBadRequest},
		{"unknown theme", `{"theme": "sepia"}`, "c1", http.StatusBadRequest},
		{"no client", `{"theme": "dark"}`, "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.UpdateTheme(w, request(http.MethodPut, tt.body, tt.clientID))
			if w.Code != tt.code {
				t.Errorf("code = %d, want %d", w.Code, tt.code)
			}
		})
	}
}

func TestTheme_StoreFailure(t *testing.T) {
	h := &PrefsHandler{Repo: failingRepo{}}

	w := httptest.NewRecorder()
	h.GetTheme(w, request(http.MethodGet, "", "c1"))
	if w.Code != http.StatusOK || decodeTheme(t, w) != repo.ThemeSystem {
		t.Errorf("get with failing store = %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.UpdateTheme(w, request(http.MethodPut, `{"theme": "light"}`, "c1"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("update with failing store = %d", w.Code)
	}
}
