package encounter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hms/hms/internal/domain/diagnosis"
	"github.com/hms/hms/internal/domain/hospital"
	"github.com/hms/hms/internal/domain/imaging"
	"github.com/hms/hms/internal/domain/labresult"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/domain/staff"
)

// Resolver builds the denormalized index document for an encounter by
// expanding its references into full records. The document is what the index
// stores and later returns from searches, so it must be complete at push time.
type Resolver struct {
	patients      *patient.Service
	hospitals     *hospital.Service
	staff         *staff.Service
	diagnoses     *diagnosis.Service
	prescriptions *prescription.Service
	labs          *labresult.Service
	imaging       *imaging.Service
}

func NewResolver(
	patients *patient.Service,
	hospitals *hospital.Service,
	staffSvc *staff.Service,
	diagnoses *diagnosis.Service,
	prescriptions *prescription.Service,
	labs *labresult.Service,
	imagingSvc *imaging.Service,
) *Resolver {
	return &Resolver{
		patients:      patients,
		hospitals:     hospitals,
		staff:         staffSvc,
		diagnoses:     diagnoses,
		prescriptions: prescriptions,
		labs:          labs,
		imaging:       imagingSvc,
	}
}

// Resolve expands the encounter into a self-contained document. The patient
// and hospital must resolve; clinical sub-records that no longer exist are
// simply omitted.
func (r *Resolver) Resolve(ctx context.Context, enc *Encounter) (map[string]interface{}, error) {
	doc, err := toMap(enc)
	if err != nil {
		return nil, fmt.Errorf("encode encounter: %w", err)
	}

	p, err := r.patients.Get(ctx, enc.HospitalID, enc.PatientID)
	if err != nil {
		return nil, fmt.Errorf("resolve patient %s: %w", enc.PatientID, err)
	}
	if doc["patient"], err = toMap(p); err != nil {
		return nil, fmt.Errorf("encode patient: %w", err)
	}

	h, err := r.hospitals.Get(ctx, enc.HospitalID)
	if err != nil {
		return nil, fmt.Errorf("resolve hospital %s: %w", enc.HospitalID, err)
	}
	if doc["hospital"], err = toMap(h); err != nil {
		return nil, fmt.Errorf("encode hospital: %w", err)
	}

	// Reference lists are best-effort: records that cannot be resolved are
	// dropped from the document entirely so it never carries bare ids.
	if enc.SeenBy != nil {
		m, err := r.staff.Get(ctx, enc.HospitalID, *enc.SeenBy)
		if err != nil {
			delete(doc, "seenBy")
		} else if doc["seenBy"], err = toMap(m); err != nil {
			return nil, fmt.Errorf("encode staff: %w", err)
		}
	}

	if ds, err := r.diagnoses.GetByIDs(ctx, enc.HospitalID, enc.Diagnoses); err != nil || len(ds) == 0 {
		delete(doc, "diagnoses")
	} else if doc["diagnoses"], err = toMapSlice(ds); err != nil {
		return nil, fmt.Errorf("encode diagnoses: %w", err)
	}
	if ps, err := r.prescriptions.GetByIDs(ctx, enc.HospitalID, enc.Prescriptions); err != nil || len(ps) == 0 {
		delete(doc, "prescriptions")
	} else if doc["prescriptions"], err = toMapSlice(ps); err != nil {
		return nil, fmt.Errorf("encode prescriptions: %w", err)
	}
	if ls, err := r.labs.GetByIDs(ctx, enc.HospitalID, enc.Labs); err != nil || len(ls) == 0 {
		delete(doc, "labs")
	} else if doc["labs"], err = toMapSlice(ls); err != nil {
		return nil, fmt.Errorf("encode labs: %w", err)
	}
	if is, err := r.imaging.GetByIDs(ctx, enc.HospitalID, enc.Imaging); err != nil || len(is) == 0 {
		delete(doc, "imaging")
	} else if doc["imaging"], err = toMapSlice(is); err != nil {
		return nil, fmt.Errorf("encode imaging: %w", err)
	}

	return doc, nil
}

func toMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func toMapSlice[T any](items []T) ([]map[string]interface{}, error) {
	result := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		m, err := toMap(item)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}
