package imaging

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

const cols = `id, hospital_id, patient_id, encounter_id, modality, performed_at, reported_at,
	report_text, images, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, rep *Report) error {
	rep.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO imaging_report (id, hospital_id, patient_id, encounter_id, modality, performed_at, reported_at, report_text, images)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rep.ID, rep.HospitalID, rep.PatientID, rep.EncounterID, rep.Modality, rep.PerformedAt, rep.ReportedAt, rep.ReportText, rep.Images,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Report, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM imaging_report WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Report, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM imaging_report WHERE hospital_id = $1 AND id = ANY($2)`, hospitalID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Report
	for rows.Next() {
		rep, err := scanRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rep)
	}
	return result, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, rep *Report) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE imaging_report SET
			encounter_id=$3, modality=$4, performed_at=$5, reported_at=$6, report_text=$7, images=$8, updated_at=NOW()
		WHERE id = $1 AND hospital_id = $2`,
		rep.ID, rep.HospitalID, rep.EncounterID, rep.Modality, rep.PerformedAt, rep.ReportedAt, rep.ReportText, rep.Images,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM imaging_report WHERE id = $1 AND hospital_id = $2`, id, hospitalID)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM imaging_report WHERE hospital_id = $1 AND patient_id = $2`,
		hospitalID, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM imaging_report WHERE hospital_id = $1 AND patient_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		hospitalID, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*Report
	for rows.Next() {
		rep, err := scanRows(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, rep)
	}
	return result, total, rows.Err()
}

func scan(row pgx.Row) (*Report, error) {
	var rep Report
	if err := row.Scan(&rep.ID, &rep.HospitalID, &rep.PatientID, &rep.EncounterID, &rep.Modality,
		&rep.PerformedAt, &rep.ReportedAt, &rep.ReportText, &rep.Images, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
		return nil, err
	}
	return &rep, nil
}

func scanRows(rows pgx.Rows) (*Report, error) {
	var rep Report
	if err := rows.Scan(&rep.ID, &rep.HospitalID, &rep.PatientID, &rep.EncounterID, &rep.Modality,
		&rep.PerformedAt, &rep.ReportedAt, &rep.ReportText, &rep.Images, &rep.CreatedAt, &rep.UpdatedAt); err != nil {
		return nil, err
	}
	return &rep, nil
}
