package patient

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyContact is one entry in a patient's emergency contact list,
// stored as JSONB.
type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// Patient maps to the patient table. The MRN serializes as "hospitalId": it is
// the hospital-issued record number, unique per hospital, and distinct from
// the owning hospital reference.
type Patient struct {
	ID                uuid.UUID          `db:"id" json:"id"`
	HospitalID        uuid.UUID          `db:"hospital_id" json:"hospital"`
	MRN               string             `db:"mrn" json:"hospitalId"`
	FirstName         string             `db:"first_name" json:"firstName"`
	LastName          string             `db:"last_name" json:"lastName"`
	DOB               *time.Time         `db:"dob" json:"dob,omitempty"`
	Gender            string             `db:"gender" json:"gender"`
	Phone             *string            `db:"phone" json:"phone,omitempty"`
	Address           *string            `db:"address" json:"address,omitempty"`
	BloodGroup        *string            `db:"blood_group" json:"bloodGroup,omitempty"`
	Allergies         []string           `db:"allergies" json:"allergies,omitempty"`
	ChronicConditions []string           `db:"chronic_conditions" json:"chronicConditions,omitempty"`
	EmergencyContacts []EmergencyContact `db:"emergency_contacts" json:"emergencyContacts,omitempty"`
	CreatedAt         time.Time          `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `db:"updated_at" json:"updatedAt"`
}

// Valid gender values.
var validGenders = map[string]bool{
	"male":    true,
	"female":  true,
	"other":   true,
	"unknown": true,
}
