package imaging

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -- Mock Repository --

type mockRepo struct {
	records map[uuid.UUID]*Report
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Report)}
}

func (m *mockRepo) Create(_ context.Context, rep *Report) error {
	rep.ID = uuid.New()
	rep.CreatedAt = time.Now()
	rep.UpdatedAt = time.Now()
	m.records[rep.ID] = rep
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, hospitalID, id uuid.UUID) (*Report, error) {
	rep, ok := m.records[id]
	if !ok || rep.HospitalID != hospitalID {
		return nil, pgx.ErrNoRows
	}
	return rep, nil
}

func (m *mockRepo) GetByIDs(_ context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Report, error) {
	var out []*Report
	for _, id := range ids {
		if rep, ok := m.records[id]; ok && rep.HospitalID == hospitalID {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, rep *Report) error {
	m.records[rep.ID] = rep
	return nil
}

func (m *mockRepo) Delete(_ context.Context, hospitalID, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Report, int, error) {
	var out []*Report
	for _, rep := range m.records {
		if rep.HospitalID == hospitalID && rep.PatientID == patientID {
			out = append(out, rep)
		}
	}
	return out, len(out), nil
}

// -- Tests --

func TestCreateImagingReport_DefaultsModality(t *testing.T) {
	svc := NewService(newMockRepo())
	hospitalID := uuid.New()

	rep := &Report{PatientID: uuid.New()}
	if err := svc.Create(context.Background(), hospitalID, rep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Modality != ModalityOther {
		t.Errorf("expected modality %q, got %q", ModalityOther, rep.Modality)
	}
	if rep.HospitalID != hospitalID {
		t.Error("expected hospital id to be set from the caller")
	}
}

func TestCreateImagingReport_InvalidModality(t *testing.T) {
	svc := NewService(newMockRepo())

	rep := &Report{PatientID: uuid.New(), Modality: "PETSCAN"}
	if err := svc.Create(context.Background(), uuid.New(), rep); err == nil {
		t.Fatal("expected error for invalid modality")
	}
}

func TestUpdateImagingReport_InvalidModality(t *testing.T) {
	svc := NewService(newMockRepo())
	hospitalID := uuid.New()

	rep := &Report{PatientID: uuid.New(), Modality: ModalityCT}
	if err := svc.Create(context.Background(), hospitalID, rep); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rep.Modality = "HOLOGRAM"
	if err := svc.Update(context.Background(), hospitalID, rep); err == nil {
		t.Fatal("expected error for invalid modality")
	}
}

func TestGetImagingReportsByIDs_ScopedToHospital(t *testing.T) {
	svc := NewService(newMockRepo())
	hospitalID := uuid.New()

	mine := &Report{PatientID: uuid.New(), Modality: ModalityXRay}
	if err := svc.Create(context.Background(), hospitalID, mine); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	theirs := &Report{PatientID: uuid.New(), Modality: ModalityMRI}
	if err := svc.Create(context.Background(), uuid.New(), theirs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByIDs(context.Background(), hospitalID, []uuid.UUID{mine.ID, theirs.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("expected only the requester's report, got %d", len(got))
	}
}
