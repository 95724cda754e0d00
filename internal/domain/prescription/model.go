package prescription

import (
	"time"

	"github.com/google/uuid"
)

// Item is one prescribed medication, stored as JSONB.
type Item struct {
	Name         string `json:"name"`
	Dosage       string `json:"dosage,omitempty"`
	Frequency    string `json:"frequency,omitempty"`
	DurationDays int    `json:"durationDays,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	Quantity     int    `json:"quantity,omitempty"`
}

// Prescription maps to the prescription table.
type Prescription struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	HospitalID   uuid.UUID  `db:"hospital_id" json:"hospital"`
	PatientID    uuid.UUID  `db:"patient_id" json:"patient"`
	PrescribedBy *uuid.UUID `db:"prescribed_by" json:"prescribedBy,omitempty"`
	EncounterID  *uuid.UUID `db:"encounter_id" json:"encounter,omitempty"`
	Items        []Item     `db:"items" json:"items"`
	Notes        *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}
