package tuning

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Handler struct{}

type Response struct {
	Input   Input   `json:"input"`
	Result  Result  `json:"result"`
	Display Display `json:"display"`
}

type ErrorResponse struct {
	Errors FieldErrors `json:"errors"`
}

// Evaluate validates a form and, if it passes, calculates it.
func Evaluate(f Form) (Response, error) {
	in, err := f.Validate()
	if err != nil {
		return Response{}, err
	}
	res := Calculate(in)
	return Response{Input: in, Result: res, Display: res.Display()}, nil
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var form Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Evaluate(form)
	if err != nil {
		WriteFieldErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) SwapOptions(w http.ResponseWriter, r *http.Request) {
	stock := StockDrive(r.URL.Query().Get("stock"))
	opts := DriveOptions()
	if stock != "" {
		if !stock.Valid() {
			http.Error(w, "Unknown drive type", http.StatusBadRequest)
			return
		}
		opts = SwapOptions(stock)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(opts)
}

// WriteFieldErrors answers 400 with per-field messages when err carries
// them, and a plain calculation error otherwise.
func WriteFieldErrors(w http.ResponseWriter, err error) {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{Errors: fe})
}
