package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no patient matches within the hospital.
var ErrNotFound = errors.New("patient not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, p *Patient) error {
	if p.MRN == "" {
		return fmt.Errorf("hospitalId (MRN) is required")
	}
	if p.Gender == "" {
		p.Gender = "unknown"
	}
	if !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	p.HospitalID = hospitalID
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *Service) GetByMRN(ctx context.Context, hospitalID uuid.UUID, mrn string) (*Patient, error) {
	p, err := s.repo.GetByMRN(ctx, hospitalID, mrn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, p *Patient) error {
	if p.Gender != "" && !validGenders[p.Gender] {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	if _, err := s.Get(ctx, hospitalID, p.ID); err != nil {
		return err
	}
	p.HospitalID = hospitalID
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, hospitalID, limit, offset)
}

func (s *Service) SearchByName(ctx context.Context, hospitalID uuid.UUID, term string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.SearchByName(ctx, hospitalID, term, limit, offset)
}
