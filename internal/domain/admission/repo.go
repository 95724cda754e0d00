package admission

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Admission) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Admission, error)
	Update(ctx context.Context, a *Admission) error
	List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Admission, int, error)
	ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error)
}
