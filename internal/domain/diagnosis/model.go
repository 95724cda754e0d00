package diagnosis

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis maps to the diagnosis table. Code is an ICD-10 or local code.
type Diagnosis struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	HospitalID  uuid.UUID  `db:"hospital_id" json:"hospital"`
	Code        *string    `db:"code" json:"code,omitempty"`
	Description string     `db:"description" json:"description"`
	IsPrimary   bool       `db:"is_primary" json:"isPrimary"`
	RecordedBy  *uuid.UUID `db:"recorded_by" json:"recordedBy,omitempty"`
	RecordedAt  time.Time  `db:"recorded_at" json:"recordedAt"`
}
