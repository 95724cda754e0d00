package patient

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

const cols = `id, hospital_id, mrn, first_name, last_name, dob, gender, phone, address,
	blood_group, allergies, chronic_conditions, emergency_contacts, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patient (
			id, hospital_id, mrn, first_name, last_name, dob, gender, phone, address,
			blood_group, allergies, chronic_conditions, emergency_contacts
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.HospitalID, p.MRN, p.FirstName, p.LastName, p.DOB, p.Gender, p.Phone, p.Address,
		p.BloodGroup, p.Allergies, p.ChronicConditions, p.EmergencyContacts,
	)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Patient, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM patient WHERE id = $1 AND hospital_id = $2`, id, hospitalID))
}

func (r *repoPG) GetByMRN(ctx context.Context, hospitalID uuid.UUID, mrn string) (*Patient, error) {
	return scan(r.conn(ctx).QueryRow(ctx,
		`SELECT `+cols+` FROM patient WHERE hospital_id = $1 AND mrn = $2`, hospitalID, mrn))
}

func (r *repoPG) Update(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE patient SET
			mrn=$3, first_name=$4, last_name=$5, dob=$6, gender=$7, phone=$8, address=$9,
			blood_group=$10, allergies=$11, chronic_conditions=$12, emergency_contacts=$13,
			updated_at=NOW()
		WHERE id = $1 AND hospital_id = $2`,
		p.ID, p.HospitalID, p.MRN, p.FirstName, p.LastName, p.DOB, p.Gender, p.Phone, p.Address,
		p.BloodGroup, p.Allergies, p.ChronicConditions, p.EmergencyContacts,
	)
	return err
}

func (r *repoPG) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1 AND hospital_id = $2`, id, hospitalID)
	return err
}

func (r *repoPG) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM patient WHERE hospital_id = $1`, hospitalID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+cols+` FROM patient WHERE hospital_id = $1 ORDER BY last_name, first_name LIMIT $2 OFFSET $3`,
		hospitalID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func (r *repoPG) SearchByName(ctx context.Context, hospitalID uuid.UUID, term string, limit, offset int) ([]*Patient, int, error) {
	pattern := "%" + term + "%"
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `
		SELECT COUNT(*) FROM patient
		WHERE hospital_id = $1 AND (first_name ILIKE $2 OR last_name ILIKE $2 OR mrn ILIKE $2)`,
		hospitalID, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+cols+` FROM patient
		WHERE hospital_id = $1 AND (first_name ILIKE $2 OR last_name ILIKE $2 OR mrn ILIKE $2)
		ORDER BY last_name, first_name LIMIT $3 OFFSET $4`,
		hospitalID, pattern, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collect(rows, total)
}

func scan(row pgx.Row) (*Patient, error) {
	var p Patient
	if err := row.Scan(&p.ID, &p.HospitalID, &p.MRN, &p.FirstName, &p.LastName, &p.DOB, &p.Gender,
		&p.Phone, &p.Address, &p.BloodGroup, &p.Allergies, &p.ChronicConditions,
		&p.EmergencyContacts, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func collect(rows pgx.Rows, total int) ([]*Patient, int, error) {
	var result []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(&p.ID, &p.HospitalID, &p.MRN, &p.FirstName, &p.LastName, &p.DOB, &p.Gender,
			&p.Phone, &p.Address, &p.BloodGroup, &p.Allergies, &p.ChronicConditions,
			&p.EmergencyContacts, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, &p)
	}
	return result, total, rows.Err()
}
