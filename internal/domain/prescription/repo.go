package prescription

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Prescription, error)
	GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Prescription, error)
	Update(ctx context.Context, p *Prescription) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error)
}
