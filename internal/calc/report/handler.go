package report

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"Tunelab/internal/calc/premium/batch"
)

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.Evaluate(input.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"setup.pdf\"")
	if err := Write(w, input, res.Results, time.Now()); err != nil {
		log.Printf("pdf report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
