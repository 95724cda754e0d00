package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no prescription matches within the hospital.
var ErrNotFound = errors.New("prescription not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, p *Prescription) error {
	if p.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for i, item := range p.Items {
		if item.Name == "" {
			return fmt.Errorf("item %d: name is required", i)
		}
	}
	p.HospitalID = hospitalID
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Prescription, error) {
	p, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *Service) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Prescription, error) {
	return s.repo.GetByIDs(ctx, hospitalID, ids)
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, p *Prescription) error {
	if _, err := s.Get(ctx, hospitalID, p.ID); err != nil {
		return err
	}
	p.HospitalID = hospitalID
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	return s.repo.ListByPatient(ctx, hospitalID, patientID, limit, offset)
}
