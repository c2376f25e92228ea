package prefs

import (
	"encoding/json"
	"log"
	"net/http"

	"Tunelab/internal/auth"
	"Tunelab/internal/repo"
)

type PrefsHandler struct {
	Repo repo.Repository
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type ThemeResponse struct {
	Theme repo.Theme `json:"theme"`
}

func (h *PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	clientID, ok := auth.ClientID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	theme, err := h.Repo.GetTheme(r.Context(), clientID)
	if err != nil {
		// The UI falls back to the system scheme.
		log.Printf("GetTheme error: %v", err)
		theme = repo.ThemeSystem
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ThemeResponse{Theme: theme})
}

func (h *PrefsHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	clientID, ok := auth.ClientID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	theme, err := repo.ParseTheme(req.Theme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.SetTheme(r.Context(), clientID, theme); err != nil {
		log.Printf("SetTheme error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ThemeResponse{Theme: theme})
}
