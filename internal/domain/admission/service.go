package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no admission matches within the hospital.
var ErrNotFound = errors.New("admission not found")

var validStatuses = map[string]bool{
	StatusActive:      true,
	StatusDischarged:  true,
	StatusTransferred: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// normalize enforces the discharge rules: a discharge time may not precede the
// admission time, and a set discharge time forces the discharged status.
func normalize(a *Admission) error {
	if a.DischargeAt != nil && a.DischargeAt.Before(a.AdmittedAt) {
		return fmt.Errorf("dischargeAt must be later than admittedAt")
	}
	if a.DischargeAt != nil && a.Status != StatusDischarged {
		a.Status = StatusDischarged
	}
	return nil
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, a *Admission) error {
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if a.AdmittedAt.IsZero() {
		a.AdmittedAt = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if err := normalize(a); err != nil {
		return err
	}
	a.HospitalID = hospitalID
	return s.repo.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Admission, error) {
	a, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, a *Admission) error {
	if a.Status != "" && !validStatuses[a.Status] {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if _, err := s.Get(ctx, hospitalID, a.ID); err != nil {
		return err
	}
	if err := normalize(a); err != nil {
		return err
	}
	a.HospitalID = hospitalID
	return s.repo.Update(ctx, a)
}

// Discharge closes an active admission, stamping the discharge time and
// summary.
func (s *Service) Discharge(ctx context.Context, hospitalID, id uuid.UUID, summary string) (*Admission, error) {
	a, err := s.Get(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.DischargeAt = &now
	if summary != "" {
		a.DischargeSummary = &summary
	}
	if err := normalize(a); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	return s.repo.List(ctx, hospitalID, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Admission, int, error) {
	return s.repo.ListByPatient(ctx, hospitalID, patientID, limit, offset)
}
