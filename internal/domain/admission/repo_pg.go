package admission

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

const cols = `id, hospital_id, patient_id, admitted_at, admitted_by, admission_reason,
	ward, room, primary_consultant, discharge_at, discharge_summary, status, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Admission) error {
	a.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO admission (
			id, hospital_id, patient_id, admitted_at, admitted_by, admission_reason,
			ward, room, primary_consultant, discharge_at, discharge_summary, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.HospitalID, a.PatientID, a.AdmittedAt, a.AdmittedBy, a.AdmissionReason,
		a.Ward, a.Room, a.PrimaryConsultant, a.DischargeAt, a.DischargeSummary, a.Status,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Admission, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM admission WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) Update(ctx context.Context, a *Admission) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE admission SET
			admitted_at=$3, admitted_by=$4, admission_reason=$5, ward=$6, room=$7,
			primary_consultant=$8, discharge_at=$9, discharge_summary=$10, status=$11, updated_at=NOW()
		WHERE id = $1 AND hospital_id = $2`,
		a.ID, a.HospitalID, a.AdmittedAt, a.AdmittedBy, a.AdmissionReason, a.Ward, a.Room,
		a.PrimaryConsultant, a.DischargeAt, a.DischargeSummary, a.Status,
	)
	return err
}

func (r *repoPG) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM admission WHERE hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM admission WHERE hospital_id = $1 ORDER BY admitted_at DESC LIMIT $2 OFFSET $3`,
		hospitalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM admission WHERE hospital_id = $1 AND patient_id = $2`,
		hospitalID, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM admission WHERE hospital_id = $1 AND patient_id = $2
		 ORDER BY admitted_at DESC LIMIT $3 OFFSET $4`,
		hospitalID, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func scan(row pgx.Row) (*Admission, error) {
	var a Admission
	if err := row.Scan(&a.ID, &a.HospitalID, &a.PatientID, &a.AdmittedAt, &a.AdmittedBy,
		&a.AdmissionReason, &a.Ward, &a.Room, &a.PrimaryConsultant, &a.DischargeAt,
		&a.DischargeSummary, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func collect(rows pgx.Rows, total int) ([]*Admission, int, error) {
	var result []*Admission
	for rows.Next() {
		var a Admission
		if err := rows.Scan(&a.ID, &a.HospitalID, &a.PatientID, &a.AdmittedAt, &a.AdmittedBy,
			&a.AdmissionReason, &a.Ward, &a.Room, &a.PrimaryConsultant, &a.DischargeAt,
			&a.DischargeSummary, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, &a)
	}
	return result, total, rows.Err()
}
