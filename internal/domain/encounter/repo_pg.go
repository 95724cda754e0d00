package encounter

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const cols = `id, hospital_id, patient_id, encounter_type, seen_by, started_at, ended_at,
	chief_complaint, history_of_present_illness, examination, vitals,
	diagnoses, prescriptions, labs, imaging, notes, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, enc *Encounter) error {
	enc.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO encounter (
			id, hospital_id, patient_id, encounter_type, seen_by, started_at, ended_at,
			chief_complaint, history_of_present_illness, examination, vitals,
			diagnoses, prescriptions, labs, imaging, notes
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		enc.ID, enc.HospitalID, enc.PatientID, enc.EncounterType, enc.SeenBy, enc.StartedAt, enc.EndedAt,
		enc.ChiefComplaint, enc.HistoryOfPresentIllness, enc.Examination, enc.Vitals,
		enc.Diagnoses, enc.Prescriptions, enc.Labs, enc.Imaging, enc.Notes,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Encounter, error) {
	return scanEnc(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM encounter WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) Update(ctx context.Context, enc *Encounter) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE encounter SET
			encounter_type=$3, seen_by=$4, started_at=$5, ended_at=$6,
			chief_complaint=$7, history_of_present_illness=$8, examination=$9, vitals=$10,
			diagnoses=$11, prescriptions=$12, labs=$13, imaging=$14, notes=$15, updated_at=NOW()
		WHERE id = $1 AND hospital_id = $2`,
		enc.ID, enc.HospitalID, enc.EncounterType, enc.SeenBy, enc.StartedAt, enc.EndedAt,
		enc.ChiefComplaint, enc.HistoryOfPresentIllness, enc.Examination, enc.Vitals,
		enc.Diagnoses, enc.Prescriptions, enc.Labs, enc.Imaging, enc.Notes,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM encounter WHERE id = $1 AND hospital_id = $2`, id, hospitalID)
	return err
}

func (r *repoPG) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM encounter WHERE hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM encounter WHERE hospital_id = $1 ORDER BY started_at DESC LIMIT $2 OFFSET $3`,
		hospitalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectEncs(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM encounter WHERE hospital_id = $1 AND patient_id = $2`,
		hospitalID, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM encounter WHERE hospital_id = $1 AND patient_id = $2
		 ORDER BY started_at DESC LIMIT $3 OFFSET $4`,
		hospitalID, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectEncs(rows, total)
}

func scanEnc(row pgx.Row) (*Encounter, error) {
	var e Encounter
	if err := row.Scan(&e.ID, &e.HospitalID, &e.PatientID, &e.EncounterType, &e.SeenBy,
		&e.StartedAt, &e.EndedAt, &e.ChiefComplaint, &e.HistoryOfPresentIllness, &e.Examination,
		&e.Vitals, &e.Diagnoses, &e.Prescriptions, &e.Labs, &e.Imaging, &e.Notes,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEncs(rows pgx.Rows, total int) ([]*Encounter, int, error) {
	var result []*Encounter
	for rows.Next() {
		var e Encounter
		if err := rows.Scan(&e.ID, &e.HospitalID, &e.PatientID, &e.EncounterType, &e.SeenBy,
			&e.StartedAt, &e.EndedAt, &e.ChiefComplaint, &e.HistoryOfPresentIllness, &e.Examination,
			&e.Vitals, &e.Diagnoses, &e.Prescriptions, &e.Labs, &e.Imaging, &e.Notes,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, &e)
	}
	return result, total, rows.Err()
}
