package labresult

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

const cols = `id, hospital_id, patient_id, ordered_by, encounter_id, collected_at, reported_at,
	tests, status, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, l *LabResult) error {
	l.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO lab_result (id, hospital_id, patient_id, ordered_by, encounter_id, collected_at, reported_at, tests, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		l.ID, l.HospitalID, l.PatientID, l.OrderedBy, l.EncounterID, l.CollectedAt, l.ReportedAt, l.Tests, l.Status,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*LabResult, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM lab_result WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*LabResult, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM lab_result WHERE hospital_id = $1 AND id = ANY($2)`, hospitalID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*LabResult
	for rows.Next() {
		l, err := scanRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, l *LabResult) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE lab_result SET
			ordered_by=$3, encounter_id=$4, collected_at=$5, reported_at=$6, tests=$7, status=$8, updated_at=NOW()
		WHERE id = $1 AND hospital_id = $2`,
		l.ID, l.HospitalID, l.OrderedBy, l.EncounterID, l.CollectedAt, l.ReportedAt, l.Tests, l.Status,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM lab_result WHERE id = $1 AND hospital_id = $2`, id, hospitalID)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM lab_result WHERE hospital_id = $1 AND patient_id = $2`,
		hospitalID, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM lab_result WHERE hospital_id = $1 AND patient_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		hospitalID, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*LabResult
	for rows.Next() {
		l, err := scanRows(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, l)
	}
	return result, total, rows.Err()
}

func scan(row pgx.Row) (*LabResult, error) {
	var l LabResult
	if err := row.Scan(&l.ID, &l.HospitalID, &l.PatientID, &l.OrderedBy, &l.EncounterID,
		&l.CollectedAt, &l.ReportedAt, &l.Tests, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanRows(rows pgx.Rows) (*LabResult, error) {
	var l LabResult
	if err := rows.Scan(&l.ID, &l.HospitalID, &l.PatientID, &l.OrderedBy, &l.EncounterID,
		&l.CollectedAt, &l.ReportedAt, &l.Tests, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}
