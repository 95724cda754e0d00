package diagnosis

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

const cols = `id, hospital_id, code, description, is_primary, recorded_by, recorded_at`

func (r *repoPG) Create(ctx context.Context, d *Diagnosis) error {
	d.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO diagnosis (id, hospital_id, code, description, is_primary, recorded_by, recorded_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		d.ID, d.HospitalID, d.Code, d.Description, d.IsPrimary, d.RecordedBy, d.RecordedAt,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Diagnosis, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM diagnosis WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Diagnosis, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM diagnosis WHERE hospital_id = $1 AND id = ANY($2)`, hospitalID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Diagnosis
	for rows.Next() {
		var d Diagnosis
		if err := rows.Scan(&d.ID, &d.HospitalID, &d.Code, &d.Description, &d.IsPrimary, &d.RecordedBy, &d.RecordedAt); err != nil {
			return nil, err
		}
		result = append(result, &d)
	}
	return result, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, d *Diagnosis) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE diagnosis SET code=$3, description=$4, is_primary=$5, recorded_by=$6
		WHERE id = $1 AND hospital_id = $2`,
		d.ID, d.HospitalID, d.Code, d.Description, d.IsPrimary, d.RecordedBy,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM diagnosis WHERE id = $1 AND hospital_id = $2`, id, hospitalID)
	return err
}

func (r *repoPG) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Diagnosis, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM diagnosis WHERE hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM diagnosis WHERE hospital_id = $1 ORDER BY recorded_at DESC LIMIT $2 OFFSET $3`,
		hospitalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []*Diagnosis
	for rows.Next() {
		var d Diagnosis
		if err := rows.Scan(&d.ID, &d.HospitalID, &d.Code, &d.Description, &d.IsPrimary, &d.RecordedBy, &d.RecordedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, &d)
	}
	return result, total, rows.Err()
}

func scan(row pgx.Row) (*Diagnosis, error) {
	var d Diagnosis
	if err := row.Scan(&d.ID, &d.HospitalID, &d.Code, &d.Description, &d.IsPrimary, &d.RecordedBy, &d.RecordedAt); err != nil {
		return nil, err
	}
	return &d, nil
}
