package search

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Hit is one local search match.
type Hit struct {
	ID        uuid.UUID  `json:"id"`
	PatientID *uuid.UUID `json:"patient,omitempty"`
	Summary   string     `json:"summary"`
}

// LocalResults groups local search matches by record kind.
type LocalResults struct {
	Patients      []Hit `json:"patients"`
	Encounters    []Hit `json:"encounters"`
	Labs          []Hit `json:"labs"`
	Imaging       []Hit `json:"imaging"`
	Prescriptions []Hit `json:"prescriptions"`
}

// LocalRepository runs the hospital-scoped substring search.
type LocalRepository interface {
	Search(ctx context.Context, hospitalID uuid.UUID, term string, limit int) (*LocalResults, error)
}

type localPG struct {
	pool *pgxpool.Pool
}

func NewLocalRepo(pool *pgxpool.Pool) LocalRepository {
	return &localPG{pool: pool}
}

func (r *localPG) Search(ctx context.Context, hospitalID uuid.UUID, term string, limit int) (*LocalResults, error) {
	pattern := "%" + term + "%"
	results := &LocalResults{}

	var err error
	if results.Patients, err = r.query(ctx, `
		SELECT id, NULL::uuid, first_name || ' ' || last_name || ' (' || mrn || ')'
		FROM patient
		WHERE hospital_id = $1 AND (first_name ILIKE $2 OR last_name ILIKE $2 OR mrn ILIKE $2)
		ORDER BY last_name LIMIT $3`, hospitalID, pattern, limit); err != nil {
		return nil, err
	}

	if results.Encounters, err = r.query(ctx, `
		SELECT id, patient_id, COALESCE(chief_complaint, '')
		FROM encounter
		WHERE hospital_id = $1 AND (chief_complaint ILIKE $2 OR history_of_present_illness ILIKE $2 OR notes ILIKE $2)
		ORDER BY started_at DESC LIMIT $3`, hospitalID, pattern, limit); err != nil {
		return nil, err
	}

	if results.Labs, err = r.query(ctx, `
		SELECT id, patient_id, status
		FROM lab_result
		WHERE hospital_id = $1 AND tests::text ILIKE $2
		ORDER BY created_at DESC LIMIT $3`, hospitalID, pattern, limit); err != nil {
		return nil, err
	}

	if results.Imaging, err = r.query(ctx, `
		SELECT id, patient_id, modality
		FROM imaging_report
		WHERE hospital_id = $1 AND (report_text ILIKE $2 OR modality ILIKE $2)
		ORDER BY created_at DESC LIMIT $3`, hospitalID, pattern, limit); err != nil {
		return nil, err
	}

	if results.Prescriptions, err = r.query(ctx, `
		SELECT id, patient_id, COALESCE(notes, '')
		FROM prescription
		WHERE hospital_id = $1 AND (items::text ILIKE $2 OR notes ILIKE $2)
		ORDER BY created_at DESC LIMIT $3`, hospitalID, pattern, limit); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *localPG) query(ctx context.Context, sql string, args ...interface{}) ([]Hit, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHits(rows)
}

func collectHits(rows pgx.Rows) ([]Hit, error) {
	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.ID, &h.PatientID, &h.Summary); err != nil {
			return nil, err
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
