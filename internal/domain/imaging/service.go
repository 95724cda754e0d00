package imaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no imaging report matches within the hospital.
var ErrNotFound = errors.New("imaging report not found")

var validModalities = map[string]bool{
	ModalityXRay:  true,
	ModalityUSG:   true,
	ModalityCT:    true,
	ModalityMRI:   true,
	ModalityECG:   true,
	ModalityOther: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, rep *Report) error {
	if rep.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if rep.Modality == "" {
		rep.Modality = ModalityOther
	}
	if !validModalities[rep.Modality] {
		return fmt.Errorf("invalid modality: %s", rep.Modality)
	}
	rep.HospitalID = hospitalID
	return s.repo.Create(ctx, rep)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Report, error) {
	rep, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rep, err
}

func (s *Service) GetByIDs(ctx context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Report, error) {
	return s.repo.GetByIDs(ctx, hospitalID, ids)
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, rep *Report) error {
	if rep.Modality != "" && !validModalities[rep.Modality] {
		return fmt.Errorf("invalid modality: %s", rep.Modality)
	}
	if _, err := s.Get(ctx, hospitalID, rep.ID); err != nil {
		return err
	}
	rep.HospitalID = hospitalID
	return s.repo.Update(ctx, rep)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	return s.repo.ListByPatient(ctx, hospitalID, patientID, limit, offset)
}
