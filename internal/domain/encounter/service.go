package encounter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when no encounter matches within the hospital.
var ErrNotFound = errors.New("encounter not found")

// Indexer pushes resolved encounter documents to the external search index.
// Implementations must be safe for concurrent use.
type Indexer interface {
	Upsert(ctx context.Context, encounterID, hospitalID uuid.UUID, payload map[string]interface{}) error
}

// DocumentResolver expands an encounter's references into the denormalized
// document the index stores.
type DocumentResolver interface {
	Resolve(ctx context.Context, enc *Encounter) (map[string]interface{}, error)
}

type Service struct {
	repo         Repository
	indexer      Indexer
	resolver     DocumentResolver
	logger       zerolog.Logger
	indexTimeout time.Duration
}

func NewService(repo Repository, indexer Indexer, resolver DocumentResolver, logger zerolog.Logger, indexTimeout time.Duration) *Service {
	if indexTimeout <= 0 {
		indexTimeout = 5 * time.Second
	}
	return &Service{
		repo:         repo,
		indexer:      indexer,
		resolver:     resolver,
		logger:       logger,
		indexTimeout: indexTimeout,
	}
}

// UpdateParams is a partial update: nil fields are left unchanged. EndedAt can
// only move the encounter from open to ended; an ended encounter stays ended.
type UpdateParams struct {
	EncounterType           *string     `json:"encounterType,omitempty"`
	SeenBy                  *uuid.UUID  `json:"seenBy,omitempty"`
	StartedAt               *time.Time  `json:"startedAt,omitempty"`
	EndedAt                 *time.Time  `json:"endedAt,omitempty"`
	ChiefComplaint          *string     `json:"chiefComplaint,omitempty"`
	HistoryOfPresentIllness *string     `json:"historyOfPresentIllness,omitempty"`
	Examination             *string     `json:"examination,omitempty"`
	Vitals                  *Vitals     `json:"vitals,omitempty"`
	Diagnoses               []uuid.UUID `json:"diagnoses,omitempty"`
	Prescriptions           []uuid.UUID `json:"prescriptions,omitempty"`
	Labs                    []uuid.UUID `json:"labs,omitempty"`
	Imaging                 []uuid.UUID `json:"imaging,omitempty"`
	Notes                   *string     `json:"notes,omitempty"`
}

func (s *Service) Create(ctx context.Context, hospitalID uuid.UUID, enc *Encounter) error {
	if enc.PatientID == uuid.Nil {
		return fmt.Errorf("patient is required")
	}
	if enc.EncounterType == "" {
		enc.EncounterType = TypeOutpatient
	}
	if !validTypes[enc.EncounterType] {
		return fmt.Errorf("invalid encounter type: %s", enc.EncounterType)
	}
	if enc.StartedAt.IsZero() {
		enc.StartedAt = time.Now().UTC()
	}
	if enc.EndedAt != nil && enc.EndedAt.Before(enc.StartedAt) {
		return fmt.Errorf("endedAt must not precede startedAt")
	}
	enc.HospitalID = hospitalID
	if err := s.repo.Create(ctx, enc); err != nil {
		return err
	}

	// An encounter created already ended still belongs in the index.
	if enc.Ended() {
		s.dispatchIndex(*enc)
	}
	return nil
}

func (s *Service) Get(ctx context.Context, hospitalID, id uuid.UUID) (*Encounter, error) {
	enc, err := s.repo.GetByID(ctx, hospitalID, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return enc, err
}

// Update applies a partial update. When the update sets EndedAt on a
// previously open encounter, the resolved encounter is pushed to the search
// index on a background goroutine after the write commits; indexing failures
// never surface to the caller.
func (s *Service) Update(ctx context.Context, hospitalID, id uuid.UUID, p UpdateParams) (*Encounter, error) {
	enc, err := s.Get(ctx, hospitalID, id)
	if err != nil {
		return nil, err
	}

	wasEnded := enc.Ended()

	if p.EncounterType != nil {
		if !validTypes[*p.EncounterType] {
			return nil, fmt.Errorf("invalid encounter type: %s", *p.EncounterType)
		}
		enc.EncounterType = *p.EncounterType
	}
	if p.SeenBy != nil {
		enc.SeenBy = p.SeenBy
	}
	if p.StartedAt != nil {
		enc.StartedAt = *p.StartedAt
	}
	if p.EndedAt != nil && !wasEnded {
		enc.EndedAt = p.EndedAt
	}
	if p.ChiefComplaint != nil {
		enc.ChiefComplaint = p.ChiefComplaint
	}
	if p.HistoryOfPresentIllness != nil {
		enc.HistoryOfPresentIllness = p.HistoryOfPresentIllness
	}
	if p.Examination != nil {
		enc.Examination = p.Examination
	}
	if p.Vitals != nil {
		enc.Vitals = p.Vitals
	}
	if p.Diagnoses != nil {
		enc.Diagnoses = p.Diagnoses
	}
	if p.Prescriptions != nil {
		enc.Prescriptions = p.Prescriptions
	}
	if p.Labs != nil {
		enc.Labs = p.Labs
	}
	if p.Imaging != nil {
		enc.Imaging = p.Imaging
	}
	if p.Notes != nil {
		enc.Notes = p.Notes
	}

	if enc.EndedAt != nil && enc.EndedAt.Before(enc.StartedAt) {
		return nil, fmt.Errorf("endedAt must not precede startedAt")
	}

	if err := s.repo.Update(ctx, enc); err != nil {
		return nil, err
	}

	if !wasEnded && enc.Ended() {
		s.dispatchIndex(*enc)
	}
	return enc, nil
}

// End closes an open encounter at the current time. Ending an already ended
// encounter is a no-op for the index; the stored record is unchanged.
func (s *Service) End(ctx context.Context, hospitalID, id uuid.UUID) (*Encounter, error) {
	now := time.Now().UTC()
	return s.Update(ctx, hospitalID, id, UpdateParams{EndedAt: &now})
}

func (s *Service) Delete(ctx context.Context, hospitalID, id uuid.UUID) error {
	return s.repo.Delete(ctx, hospitalID, id)
}

func (s *Service) List(ctx context.Context, hospitalID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.List(ctx, hospitalID, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.ListByPatient(ctx, hospitalID, patientID, limit, offset)
}

// dispatchIndex resolves and pushes the encounter to the index without
// blocking the caller. The goroutine uses its own deadline so request
// cancellation cannot abort an in-flight push, and every failure mode,
// including a panic in resolution, ends in a warn log.
func (s *Service) dispatchIndex(enc Encounter) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Warn().
					Str("encounter_id", enc.ID.String()).
					Interface("panic", r).
					Msg("index sync panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), s.indexTimeout)
		defer cancel()

		payload, err := s.resolver.Resolve(ctx, &enc)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("encounter_id", enc.ID.String()).
				Str("hospital_id", enc.HospitalID.String()).
				Msg("index sync skipped: resolve failed")
			return
		}

		if err := s.indexer.Upsert(ctx, enc.ID, enc.HospitalID, payload); err != nil {
			s.logger.Warn().Err(err).
				Str("encounter_id", enc.ID.String()).
				Str("hospital_id", enc.HospitalID.String()).
				Msg("index sync failed")
		}
	}()
}
