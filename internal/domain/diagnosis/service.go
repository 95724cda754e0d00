package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no diagnosis matches within the hospital.
var ErrNotFound = errors.New("diagnosis not found")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, d *Diagnosis) error {
	if d.Description == "" {
		return fmt.Errorf("description is required")
	}
	if d.RecordedAt.IsZero() {
		d.RecordedAt = time.Now().UTC()
	}
	d.HospitalID = hospitalID
	return s.repo.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Diagnosis, error) {
	d, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return d, err
}

func (s *Service) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Diagnosis, error) {
	return s.repo.GetByIDs(ctx, hospitalID, ids)
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, d *Diagnosis) error {
	if d.Description == "" {
		return fmt.Errorf("description is required")
	}
	if _, err := s.Get(ctx, hospitalID, d.ID); err != nil {
		return err
	}
	d.HospitalID = hospitalID
	return s.repo.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Diagnosis, int, error) {
	return s.repo.List(ctx, hospitalID, limit, offset)
}
