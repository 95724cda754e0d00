package labresult

import (
	"time"

	"github.com/google/uuid"
)

// Valid lab result statuses.
const (
	StatusOrdered   = "ordered"
	StatusCollected = "collected"
	StatusReported  = "reported"
	StatusCancelled = "cancelled"
)

// Test is one measurement within a lab result, stored as JSONB.
type Test struct {
	TestName       string `json:"testName"`
	Value          string `json:"value,omitempty"`
	Units          string `json:"units,omitempty"`
	ReferenceRange string `json:"referenceRange,omitempty"`
	Flagged        bool   `json:"flagged,omitempty"`
}

// LabResult maps to the lab_result table.
type LabResult struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	HospitalID  uuid.UUID  `db:"hospital_id" json:"hospital"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient"`
	OrderedBy   *uuid.UUID `db:"ordered_by" json:"orderedBy,omitempty"`
	EncounterID *uuid.UUID `db:"encounter_id" json:"encounter,omitempty"`
	CollectedAt *time.Time `db:"collected_at" json:"collectedAt,omitempty"`
	ReportedAt  *time.Time `db:"reported_at" json:"reportedAt,omitempty"`
	Tests       []Test     `db:"tests" json:"tests"`
	Status      string     `db:"status" json:"status"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
