package encounter

import (
	"time"

	"github.com/google/uuid"
)

// Valid encounter types.
const (
	TypeOutpatient  = "outpatient"
	TypeInpatient   = "inpatient"
	TypeEmergency   = "emergency"
	TypeTeleconsult = "teleconsult"
)

// Vitals is the point-in-time vital sign record captured during an encounter,
// stored as JSONB.
type Vitals struct {
	TemperatureC    *float64 `json:"temperatureC,omitempty"`
	Pulse           *int     `json:"pulse,omitempty"`
	RespiratoryRate *int     `json:"respiratoryRate,omitempty"`
	SystolicBP      *int     `json:"systolicBP,omitempty"`
	DiastolicBP     *int     `json:"diastolicBP,omitempty"`
	SpO2            *int     `json:"spo2,omitempty"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	HeightCm        *float64 `json:"heightCm,omitempty"`
}

// Encounter maps to the encounter table. An encounter is open while EndedAt
// is nil and ended once it is set; ending is one-way.
type Encounter struct {
	ID                      uuid.UUID   `db:"id" json:"id"`
	HospitalID              uuid.UUID   `db:"hospital_id" json:"hospital"`
	PatientID               uuid.UUID   `db:"patient_id" json:"patient"`
	EncounterType           string      `db:"encounter_type" json:"encounterType"`
	SeenBy                  *uuid.UUID  `db:"seen_by" json:"seenBy,omitempty"`
	StartedAt               time.Time   `db:"started_at" json:"startedAt"`
	EndedAt                 *time.Time  `db:"ended_at" json:"endedAt,omitempty"`
	ChiefComplaint          *string     `db:"chief_complaint" json:"chiefComplaint,omitempty"`
	HistoryOfPresentIllness *string     `db:"history_of_present_illness" json:"historyOfPresentIllness,omitempty"`
	Examination             *string     `db:"examination" json:"examination,omitempty"`
	Vitals                  *Vitals     `db:"vitals" json:"vitals,omitempty"`
	Diagnoses               []uuid.UUID `db:"diagnoses" json:"diagnoses,omitempty"`
	Prescriptions           []uuid.UUID `db:"prescriptions" json:"prescriptions,omitempty"`
	Labs                    []uuid.UUID `db:"labs" json:"labs,omitempty"`
	Imaging                 []uuid.UUID `db:"imaging" json:"imaging,omitempty"`
	Notes                   *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt               time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt               time.Time   `db:"updated_at" json:"updatedAt"`
}

// Ended reports whether the encounter has been closed.
func (e *Encounter) Ended() bool { return e.EndedAt != nil }

var validTypes = map[string]bool{
	TypeOutpatient:  true,
	TypeInpatient:   true,
	TypeEmergency:   true,
	TypeTeleconsult: true,
}
