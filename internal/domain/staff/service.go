package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when no staff member matches within the hospital.
var ErrNotFound = errors.New("staff member not found")

var validRoles = map[string]bool{
	RoleDoctor:        true,
	RoleNurse:         true,
	RoleAdmin:         true,
	RoleReceptionist:  true,
	RoleLabTechnician: true,
	RolePharmacist:    true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, m *Member) error {
	if m.Email == "" {
		return fmt.Errorf("email is required")
	}
	if m.FirstName == "" || m.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	if !validRoles[m.Role] {
		return fmt.Errorf("invalid role: %s", m.Role)
	}
	m.HospitalID = hospitalID
	m.IsActive = true
	return s.repo.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Member, error) {
	m, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *Service) Update(ctx context.Context, hospitalID uuid.UUID, m *Member) error {
	if m.Role != "" && !validRoles[m.Role] {
		return fmt.Errorf("invalid role: %s", m.Role)
	}
	if _, err := s.Get(ctx, hospitalID, m.ID); err != nil {
		return err
	}
	m.HospitalID = hospitalID
	return s.repo.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Member, int, error) {
	return s.repo.List(ctx, hospitalID, limit, offset)
}
