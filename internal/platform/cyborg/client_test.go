package cyborg

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestClient_Upsert(t *testing.T) {
	encID := uuid.New()
	hospID := uuid.New()

	var got upsertRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/upsert-encounter" {
			t.Errorf("expected /upsert-encounter, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	err := client.Upsert(context.Background(), encID, hospID, map[string]interface{}{
		"chiefComplaint": "chest pain",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.EncounterID != encID.String() {
		t.Errorf("expected encounter_id %s, got %s", encID, got.EncounterID)
	}
	if got.HospitalID != hospID.String() {
		t.Errorf("expected hospital_id %s, got %s", hospID, got.HospitalID)
	}
	if got.Payload["chiefComplaint"] != "chest pain" {
		t.Errorf("payload not forwarded: %v", got.Payload)
	}
}

func TestClient_Upsert_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	err := client.Upsert(context.Background(), uuid.New(), uuid.New(), nil)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestClient_Upsert_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 20*time.Millisecond)
	err := client.Upsert(context.Background(), uuid.New(), uuid.New(), nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestClient_Search(t *testing.T) {
	hospA := uuid.New()
	hospB := uuid.New()
	encID := uuid.New()

	var got searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("expected /search, got %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(searchResponse{
			Results: []SearchResult{
				{
					EncounterID: encID,
					HospitalID:  hospB,
					Score:       0.92,
					Encounter:   map[string]interface{}{"chiefComplaint": "fever"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	results, err := client.Search(context.Background(), "fever", []uuid.UUID{hospA, hospB}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Query != "fever" {
		t.Errorf("expected query 'fever', got %q", got.Query)
	}
	if got.TopK != 10 {
		t.Errorf("expected top_k 10, got %d", got.TopK)
	}
	if len(got.HospitalIDs) != 2 {
		t.Fatalf("expected 2 hospital ids, got %d", len(got.HospitalIDs))
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].EncounterID != encID {
		t.Errorf("expected encounter %s, got %s", encID, results[0].EncounterID)
	}
	if results[0].Score != 0.92 {
		t.Errorf("expected score 0.92, got %f", results[0].Score)
	}
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("expected /health, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Health_Down(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	if err := client.Health(context.Background()); err == nil {
		t.Fatal("expected error for unhealthy service")
	}
}
