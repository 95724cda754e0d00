package patient

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Patient, error)
	GetByMRN(ctx context.Context, hospitalID uuid.UUID, mrn string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Patient, int, error)
	SearchByName(ctx context.Context, hospitalID uuid.UUID, term string, limit, offset int) ([]*Patient, int, error)
}
