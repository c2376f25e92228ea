package sheet

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Tunelab/internal/calc/premium/batch"
)

const MaxUploadSize = 5 << 20 // 5MB

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "File too big", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid upload: expected a multipart form with an xlsx file", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	setups, err := ReadSetups(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := batch.Evaluate(setups)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.Evaluate(input.Items)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"tuning.xlsx\"")
	if err := WriteOutcomes(w, res.Results); err != nil {
		log.Printf("xlsx export: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
