// Package search runs hospital-scoped local search and cross-hospital
// semantic search through the external index, redacting identifying fields
// from results that belong to other hospitals.
package search

import (
	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/cyborg"
)

// Field names stripped from foreign-hospital results. Clinical content stays;
// only identity leaves.
var (
	redactedPatientFields = []string{
		"firstName", "lastName", "hospitalId", "address", "phone", "emergencyContacts",
	}
	redactedHospitalFields = []string{"name", "address", "contact"}
)

// Redact returns a copy of results where every result from a hospital other
// than requesterHospitalID has patient and hospital identifying fields
// removed. Same-hospital results pass through unchanged. The input is never
// mutated. Redaction descends exactly one level, into the patient and
// hospital sub-documents; a missing or malformed sub-document is left as-is.
func Redact(requesterHospitalID uuid.UUID, results []cyborg.SearchResult) []cyborg.SearchResult {
	if results == nil {
		return nil
	}

	out := make([]cyborg.SearchResult, len(results))
	for i, r := range results {
		if r.HospitalID == requesterHospitalID {
			out[i] = r
			continue
		}

		redacted := r
		redacted.Encounter = redactDocument(r.Encounter)
		out[i] = redacted
	}
	return out
}

func redactDocument(doc map[string]interface{}) map[string]interface{} {
	if doc == nil {
		return nil
	}
	cp := deepCopyMap(doc)

	if p, ok := cp["patient"].(map[string]interface{}); ok {
		for _, field := range redactedPatientFields {
			delete(p, field)
		}
	}
	if h, ok := cp["hospital"].(map[string]interface{}); ok {
		for _, field := range redactedHospitalFields {
			delete(h, field)
		}
	}
	return cp
}

func deepCopyMap(m map[string]interface{}) map[string]interface{} {
	cp := make(map[string]interface{}, len(m))
	for k, v := range m {
		cp[k] = deepCopyValue(v)
	}
	return cp
}

func deepCopyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(val)
	case []interface{}:
		cp := make([]interface{}, len(val))
		for i, item := range val {
			cp[i] = deepCopyValue(item)
		}
		return cp
	default:
		return v
	}
}
