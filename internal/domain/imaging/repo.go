package imaging

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, rep *Report) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*Report, error)
	GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Report, error)
	Update(ctx context.Context, rep *Report) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Report, int, error)
}
