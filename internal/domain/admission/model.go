package admission

import (
	"time"

	"github.com/google/uuid"
)

// Valid admission statuses.
const (
	StatusActive      = "active"
	StatusDischarged  = "discharged"
	StatusTransferred = "transferred"
)

// Admission maps to the admission table.
type Admission struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	HospitalID        uuid.UUID  `db:"hospital_id" json:"hospital"`
	PatientID         uuid.UUID  `db:"patient_id" json:"patient"`
	AdmittedAt        time.Time  `db:"admitted_at" json:"admittedAt"`
	AdmittedBy        *uuid.UUID `db:"admitted_by" json:"admittedBy,omitempty"`
	AdmissionReason   *string    `db:"admission_reason" json:"admissionReason,omitempty"`
	Ward              *string    `db:"ward" json:"ward,omitempty"`
	Room              *string    `db:"room" json:"room,omitempty"`
	PrimaryConsultant *uuid.UUID `db:"primary_consultant" json:"primaryConsultant,omitempty"`
	DischargeAt       *time.Time `db:"discharge_at" json:"dischargeAt,omitempty"`
	DischargeSummary  *string    `db:"discharge_summary" json:"dischargeSummary,omitempty"`
	Status            string     `db:"status" json:"status"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updatedAt"`
}
