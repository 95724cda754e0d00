package labresult

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, l *LabResult) error
	GetByID(ctx context.Context, hospitalID, id uuid.UUID) (*LabResult, error)
	GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*LabResult, error)
	Update(ctx context.Context, l *LabResult) error
	Delete(ctx context.Context, hospitalID, id uuid.UUID) error
	ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error)
}
