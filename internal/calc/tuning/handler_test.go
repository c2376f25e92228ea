package tuning

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCalcHandler_OK(t *testing.T) {
	h := &Handler{}
	body := []byte(`{
		"weight": 1500,
		"balance": 50,
		"front_freq": 2,
		"rear_bias": 0,
		"stiffness": 1,
		"front_spring_min": 1,
		"front_spring_max": 50,
		"rear_spring_min": 1,
		"rear_spring_max": 50,
		"suspension": "stock",
		"stock_drive": "awd"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/api/tune/calc", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result.FrontSpring != 50 {
		t.Errorf("front spring = %v, want 50", resp.Result.FrontSpring)
	}
	if resp.Display.FrontSpring != "50.0 kgf/mm" {
		t.Errorf("display front spring = %q", resp.Display.FrontSpring)
	}
	if resp.Display.FrontCompression != "2.0" {
		t.Errorf("display front compression = %q", resp.Display.FrontCompression)
	}
	if resp.Input.Drive != DriveAWDStock {
		t.Errorf("drive = %q, want awd_stock", resp.Input.Drive)
	}
}

func TestCalcHandler_FieldErrors(t *testing.T) {
	h := &Handler{}
	body := []byte(`{"weight": "", "balance": 50, "front_spring_min": 80, "front_spring_max": 40}`)

	req := httptest.NewRequest(http.MethodPost, "/api/tune/calc", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	h.Calc(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["weight"] == "" {
		t.Errorf("missing weight error: %v", resp.Errors)
	}
	if resp.Errors["front_spring"] == "" {
		t.Errorf("missing front_spring pair error: %v", resp.Errors)
	}
}

func TestCalcHandler_BadJSON(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/tune/calc", bytes.NewBuffer([]byte(`{invalid-json}`)))
	w := httptest.NewRecorder()
	h.Calc(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSwapOptionsHandler(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodGet, "/api/tune/swap-options?stock=fwd", nil)
	w := httptest.NewRecorder()
	h.SwapOptions(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var opts []DriveOption
	if err := json.NewDecoder(w.Body).Decode(&opts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(opts) != 2 || opts[0].Value != StockRWD || opts[1].Value != StockAWD {
		t.Errorf("options = %+v", opts)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tune/swap-options", nil)
	w = httptest.NewRecorder()
	h.SwapOptions(w, req)
	opts = nil
	json.NewDecoder(w.Body).Decode(&opts)
	if len(opts) != 3 {
		t.Errorf("expected all 3 drive options, got %+v", opts)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/tune/swap-options?stock=6x6", nil)
	w = httptest.NewRecorder()
	h.SwapOptions(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown drive, got %d", w.Code)
	}
}
