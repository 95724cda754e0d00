package imaging

import (
	"time"

	"github.com/google/uuid"
)

// Valid imaging modalities.
const (
	ModalityXRay  = "XRAY"
	ModalityUSG   = "USG"
	ModalityCT    = "CT"
	ModalityMRI   = "MRI"
	ModalityECG   = "ECG"
	ModalityOther = "OTHER"
)

// Image is one captured image reference, stored as JSONB.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// Report maps to the imaging_report table.
type Report struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	HospitalID  uuid.UUID  `db:"hospital_id" json:"hospital"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient"`
	EncounterID *uuid.UUID `db:"encounter_id" json:"encounter,omitempty"`
	Modality    string     `db:"modality" json:"modality"`
	PerformedAt *time.Time `db:"performed_at" json:"performedAt,omitempty"`
	ReportedAt  *time.Time `db:"reported_at" json:"reportedAt,omitempty"`
	ReportText  *string    `db:"report_text" json:"report,omitempty"`
	Images      []Image    `db:"images" json:"images,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updatedAt"`
}
