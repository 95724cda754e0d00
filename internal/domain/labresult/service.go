package labresult

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no lab result matches within the hospital.
var ErrNotFound = errors.New("lab result not found")

var validStatuses = map[string]bool{
	StatusOrdered:   true,
	StatusCollected: true,
	StatusReported:  true,
	StatusCancelled: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, l *LabResult) error {
	if l.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if l.Status == "" {
		l.Status = StatusOrdered
	}
	if !validStatuses[l.Status] {
		return fmt.Errorf("invalid status: %s", l.Status)
	}
	l.HospitalID = hospitalID
	return s.repo.Create(ctx, l)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*LabResult, error) {
	l, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return l, err
}

func (s *Service) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*LabResult, error) {
	return s.repo.GetByIDs(ctx, hospitalID, ids)
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, l *LabResult) error {
	if l.Status != "" && !validStatuses[l.Status] {
		return fmt.Errorf("invalid status: %s", l.Status)
	}
	if _, err := s.Get(ctx, hospitalID, l.ID); err != nil {
		return err
	}
	l.HospitalID = hospitalID
	return s.repo.Update(ctx, l)
}

// Report marks a result as reported, stamping reportedAt if unset.
func (s *Service) Report(ctx context.Context, hospitalID, id uuid.UUID, tests []Test) (*LabResult, error) {
	l, err := s.Get(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}
	if l.Status == StatusCancelled {
		return nil, fmt.Errorf("cannot report a cancelled lab result")
	}

	if len(tests) > 0 {
		l.Tests = tests
	}
	l.Status = StatusReported
	if l.ReportedAt == nil {
		now := time.Now().UTC()
		l.ReportedAt = &now
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*LabResult, int, error) {
	return s.repo.ListByPatient(ctx, hospitalID, patientID, limit, offset)
}
