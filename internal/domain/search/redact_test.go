package search

import (
	"testing"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/cyborg"
)

func sampleDocument() map[string]interface{} {
	return map[string]interface{}{
		"chiefComplaint": "chest pain",
		"notes":          "follow up in two weeks",
		"patient": map[string]interface{}{
			"firstName":         "Asha",
			"lastName":          "Rao",
			"hospitalId":        "MRN-001",
			"address":           "12 Lake Rd",
			"phone":             "555-0101",
			"emergencyContacts": []interface{}{map[string]interface{}{"name": "Ravi", "phone": "555-0102"}},
			"gender":            "female",
			"bloodGroup":        "O+",
		},
		"hospital": map[string]interface{}{
			"name":    "City General",
			"address": "1 Hospital Way",
			"contact": "555-0100",
			"code":    "CITY01",
		},
	}
}

func TestRedact_SameHospitalPassesThrough(t *testing.T) {
	hospID := uuid.New()
	results := []cyborg.SearchResult{
		{EncounterID: uuid.New(), HospitalID: hospID, Score: 0.9, Encounter: sampleDocument()},
	}

	out := Redact(hospID, results)

	p := out[0].Encounter["patient"].(map[string]interface{})
	if p["firstName"] != "Asha" {
		t.Error("expected same-hospital patient fields untouched")
	}
	h := out[0].Encounter["hospital"].(map[string]interface{})
	if h["name"] != "City General" {
		t.Error("expected same-hospital hospital fields untouched")
	}
}

func TestRedact_ForeignHospitalStripped(t *testing.T) {
	requester := uuid.New()
	foreign := uuid.New()
	results := []cyborg.SearchResult{
		{EncounterID: uuid.New(), HospitalID: foreign, Score: 0.8, Encounter: sampleDocument()},
	}

	out := Redact(requester, results)

	p := out[0].Encounter["patient"].(map[string]interface{})
	for _, field := range []string{"firstName", "lastName", "hospitalId", "address", "phone", "emergencyContacts"} {
		if _, present := p[field]; present {
			t.Errorf("expected patient.%s removed", field)
		}
	}
	// Clinical fields stay.
	if p["gender"] != "female" || p["bloodGroup"] != "O+" {
		t.Error("expected non-identifying patient fields kept")
	}
	if out[0].Encounter["chiefComplaint"] != "chest pain" {
		t.Error("expected encounter clinical fields kept")
	}

	h := out[0].Encounter["hospital"].(map[string]interface{})
	for _, field := range []string{"name", "address", "contact"} {
		if _, present := h[field]; present {
			t.Errorf("expected hospital.%s removed", field)
		}
	}
	if h["code"] != "CITY01" {
		t.Error("expected hospital code kept")
	}
}

func TestRedact_DoesNotMutateInput(t *testing.T) {
	requester := uuid.New()
	doc := sampleDocument()
	results := []cyborg.SearchResult{
		{EncounterID: uuid.New(), HospitalID: uuid.New(), Encounter: doc},
	}

	_ = Redact(requester, results)

	p := doc["patient"].(map[string]interface{})
	if p["firstName"] != "Asha" || p["phone"] != "555-0101" {
		t.Error("expected input document unchanged")
	}
	h := doc["hospital"].(map[string]interface{})
	if h["name"] != "City General" {
		t.Error("expected input hospital unchanged")
	}
}

func TestRedact_MixedHospitals(t *testing.T) {
	hospA := uuid.New()
	hospB := uuid.New()
	results := []cyborg.SearchResult{
		{EncounterID: uuid.New(), HospitalID: hospA, Encounter: sampleDocument()},
		{EncounterID: uuid.New(), HospitalID: hospB, Encounter: sampleDocument()},
	}

	out := Redact(hospA, results)

	own := out[0].Encounter["patient"].(map[string]interface{})
	if _, present := own["firstName"]; !present {
		t.Error("expected requester's own result unredacted")
	}
	other := out[1].Encounter["patient"].(map[string]interface{})
	if _, present := other["firstName"]; present {
		t.Error("expected foreign result redacted")
	}
}

func TestRedact_MissingSubObjects(t *testing.T) {
	requester := uuid.New()
	results := []cyborg.SearchResult{
		{EncounterID: uuid.New(), HospitalID: uuid.New(), Encounter: map[string]interface{}{
			"chiefComplaint": "fever",
		}},
		{EncounterID: uuid.New(), HospitalID: uuid.New(), Encounter: map[string]interface{}{
			"patient":  "not-an-object",
			"hospital": 42,
		}},
		{EncounterID: uuid.New(), HospitalID: uuid.New(), Encounter: nil},
	}

	out := Redact(requester, results)

	if out[0].Encounter["chiefComplaint"] != "fever" {
		t.Error("expected document without sub-objects to pass through")
	}
	if out[1].Encounter["patient"] != "not-an-object" {
		t.Error("expected malformed patient value left as-is")
	}
	if out[1].Encounter["hospital"] != 42 {
		t.Error("expected malformed hospital value left as-is")
	}
	if out[2].Encounter != nil {
		t.Error("expected nil document to stay nil")
	}
}

func TestRedact_EmptyAndNil(t *testing.T) {
	if out := Redact(uuid.New(), nil); out != nil {
		t.Error("expected nil in, nil out")
	}
	if out := Redact(uuid.New(), []cyborg.SearchResult{}); len(out) != 0 {
		t.Error("expected empty in, empty out")
	}
}
