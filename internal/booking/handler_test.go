package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clarity_backend/internal/leads"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newWebhookRouter(store *testLeadStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewHandler(newTestBookingService(store))
	engine.POST("/webhooks/calendly", handler.HandleCalendlyWebhook)
	return engine
}

func postWebhook(t *testing.T, engine *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/calendly", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestHandleCalendlyWebhook_InvalidJSON(t *testing.T) {
	engine := newWebhookRouter(&testLeadStore{})

	rec := postWebhook(t, engine, "{broken")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid JSON") {
		t.Fatalf("expected an invalid-json error, got %s", rec.Body.String())
	}
}

func TestHandleCalendlyWebhook_MissingEventType(t *testing.T) {
	engine := newWebhookRouter(&testLeadStore{})

	rec := postWebhook(t, engine, `{"payload":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing event type") {
		t.Fatalf("expected the missing-event-type error, got %s", rec.Body.String())
	}
}

func TestHandleCalendlyWebhook_Applied(t *testing.T) {
	store := &testLeadStore{lead: leads.Lead{ID: uuid.New()}}
	engine := newWebhookRouter(store)

	rec := postWebhook(t, engine, `{"event":"invitee.created","payload":{"invitee":{"email":"ada@example.com"}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != true {
		t.Fatalf("expected an ok acknowledgement, got %v", body)
	}
	if _, hasNote := body["note"]; hasNote {
		t.Fatalf("expected no note on an applied transition, got %v", body)
	}
	if store.updates != 1 {
		t.Fatalf("expected one update, got %d", store.updates)
	}
}

func TestHandleCalendlyWebhook_NoMatchStaysOK(t *testing.T) {
	store := &testLeadStore{findErr: leads.ErrLeadNotFound}
	engine := newWebhookRouter(store)

	rec := postWebhook(t, engine, `{"event":"invitee.created","payload":{"invitee":{"email":"ghost@example.com"}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["note"] != "No matching lead found" {
		t.Fatalf("expected the no-match note, got %v", body)
	}
}

func TestHandleCalendlyWebhook_IgnoredEventEchoesType(t *testing.T) {
	engine := newWebhookRouter(&testLeadStore{})

	rec := postWebhook(t, engine, `{"event":"invitee.updated","payload":{"invitee":{"email":"ada@example.com"}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["note"] != "Event ignored" || body["eventType"] != "invitee.updated" {
		t.Fatalf("expected the ignored note with the event type, got %v", body)
	}
}
