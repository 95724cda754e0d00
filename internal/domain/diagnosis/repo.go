package diagnosis

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Diagnosis) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Diagnosis, error)
	GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Diagnosis, error)
	Update(ctx context.Context, d *Diagnosis) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Diagnosis, int, error)
}
