package prescription

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

const cols = `id, hospital_id, patient_id, prescribed_by, encounter_id, items, notes, created_at`

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO prescription (id, hospital_id, patient_id, prescribed_by, encounter_id, items, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.HospitalID, p.PatientID, p.PrescribedBy, p.EncounterID, p.Items, p.Notes,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Prescription, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM prescription WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Prescription, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM prescription WHERE hospital_id = $1 AND id = ANY($2)`, hospitalID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Prescription
	for rows.Next() {
		p, err := scanRows(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Prescription) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE prescription SET prescribed_by=$3, encounter_id=$4, items=$5, notes=$6
		WHERE id = $1 AND hospital_id = $2`,
		p.ID, p.HospitalID, p.PrescribedBy, p.EncounterID, p.Items, p.Notes,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM prescription WHERE id = $1 AND hospital_id = $2`, id, hospitalID)
	return err
}

func (r *repoPG) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM prescription WHERE hospital_id = $1 AND patient_id = $2`,
		hospitalID, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM prescription WHERE hospital_id = $1 AND patient_id = $2
		 ORDER BY created_at DESC LIMIT $3 OFFSET $4`,
		hospitalID, patientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*Prescription
	for rows.Next() {
		p, err := scanRows(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	return result, total, rows.Err()
}

func scan(row pgx.Row) (*Prescription, error) {
	var p Prescription
	if err := row.Scan(&p.ID, &p.HospitalID, &p.PatientID, &p.PrescribedBy, &p.EncounterID, &p.Items, &p.Notes, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanRows(rows pgx.Rows) (*Prescription, error) {
	var p Prescription
	if err := rows.Scan(&p.ID, &p.HospitalID, &p.PatientID, &p.PrescribedBy, &p.EncounterID, &p.Items, &p.Notes, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
