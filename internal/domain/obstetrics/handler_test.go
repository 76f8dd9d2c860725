package obstetrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	return NewHandler(svc), echo.New()
}

func TestHandler_CreateSheet(t *testing.T) {
	h, e := newTestHandler()

	body := `{"patient_admission_id":"1","reason_for_admission":"Labor pains"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateSheet(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "success" {
		t.Errorf("expected success status, got %q", resp.Status)
	}
	if resp.Message != "Obstetric sheet created successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

// Sheet validation failures answer 400 with a bare errors map, no envelope.
func TestHandler_CreateSheet_ValidationFailed(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateSheet(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Status string              `json:"status"`
		Errors map[string][]string `json:"errors"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Errors["patient_admission_id"]) == 0 {
		t.Error("expected patient_admission_id in errors")
	}
	if resp.Status != "" {
		t.Error("status key must be absent on the sheet validation path")
	}
}

func TestHandler_GetSheet_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	if err := h.GetSheet(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Not found" {
		t.Errorf("unexpected body %v", resp)
	}
}

func TestHandler_DeleteSheet(t *testing.T) {
	h, e := newTestHandler()

	h.svc.CreateSheet(nil, map[string]interface{}{"patient_admission_id": "1"})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeleteSheet(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

// Pregnancy record responses are raw resources without the envelope.
func TestHandler_CreateRecord(t *testing.T) {
	h, e := newTestHandler()

	h.svc.CreateSheet(nil, map[string]interface{}{"patient_admission_id": "1"})

	body := `{"obstetric_sheet_id":1,"pregnancy_order":"G1","gender":"Male"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRecord(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if _, enveloped := resp["status"]; enveloped {
		t.Error("record responses must not be enveloped")
	}
	if resp["pregnancy_order"] != "G1" {
		t.Errorf("expected raw record body, got %v", resp)
	}
}

func TestHandler_CreateRecord_ValidationFailed(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRecord(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Errors["obstetric_sheet_id"]) == 0 {
		t.Error("expected obstetric_sheet_id in errors")
	}
}

func TestHandler_GetRecord_NotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	if err := h.GetRecord(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Not Found" {
		t.Errorf("unexpected body %v", resp)
	}
}

func TestHandler_DeleteRecord(t *testing.T) {
	h, e := newTestHandler()

	h.svc.CreateSheet(nil, map[string]interface{}{"patient_admission_id": "1"})
	h.svc.CreateRecord(nil, map[string]interface{}{
		"obstetric_sheet_id": float64(1),
		"pregnancy_order":    "G1",
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.DeleteRecord(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
