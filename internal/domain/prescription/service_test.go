package prescription

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -- Mock Repository --

type mockRepo struct {
	records map[uuid.UUID]*Prescription
}

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[uuid.UUID]*Prescription)}
}

func (m *mockRepo) Create(_ context.Context, p *Prescription) error {
	p.ID = uuid.New()
	m.records[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, hospitalID, id uuid.UUID) (*Prescription, error) {
	p, ok := m.records[id]
	if !ok || p.HospitalID != hospitalID {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockRepo) GetByIDs(_ context.Context, hospitalID uuid.UUID, ids []uuid.UUID) ([]*Prescription, error) {
	var out []*Prescription
	for _, id := range ids {
		if p, ok := m.records[id]; ok && p.HospitalID == hospitalID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) Update(_ context.Context, p *Prescription) error {
	m.records[p.ID] = p
	return nil
}

func (m *mockRepo) Delete(_ context.Context, hospitalID, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockRepo) ListByPatient(_ context.Context, hospitalID, patientID uuid.UUID, limit, offset int) ([]*Prescription, int, error) {
	var out []*Prescription
	for _, p := range m.records {
		if p.HospitalID == hospitalID && p.PatientID == patientID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

// -- Tests --

func TestCreatePrescription(t *testing.T) {
	svc := NewService(newMockRepo())
	hospitalID := uuid.New()

	p := &Prescription{
		PatientID: uuid.New(),
		Items:     []Item{{Name: "Paracetamol", Dosage: "650mg", Frequency: "TID"}},
	}
	if err := svc.Create(context.Background(), hospitalID, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HospitalID != hospitalID {
		t.Error("expected hospital id to be set from the caller")
	}
}

func TestCreatePrescription_RequiresItems(t *testing.T) {
	svc := NewService(newMockRepo())

	p := &Prescription{PatientID: uuid.New()}
	if err := svc.Create(context.Background(), uuid.New(), p); err == nil {
		t.Fatal("expected error for empty item list")
	}
}

func TestCreatePrescription_RequiresItemNames(t *testing.T) {
	svc := NewService(newMockRepo())

	p := &Prescription{
		PatientID: uuid.New(),
		Items:     []Item{{Name: "Metformin"}, {Dosage: "5mg"}},
	}
	if err := svc.Create(context.Background(), uuid.New(), p); err == nil {
		t.Fatal("expected error for unnamed item")
	}
}

func TestGetPrescriptionsByIDs_ScopedToHospital(t *testing.T) {
	svc := NewService(newMockRepo())
	hospitalID := uuid.New()

	mine := &Prescription{PatientID: uuid.New(), Items: []Item{{Name: "Atorvastatin"}}}
	if err := svc.Create(context.Background(), hospitalID, mine); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	theirs := &Prescription{PatientID: uuid.New(), Items: []Item{{Name: "Ibuprofen"}}}
	if err := svc.Create(context.Background(), uuid.New(), theirs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetByIDs(context.Background(), hospitalID, []uuid.UUID{mine.ID, theirs.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("expected only the requester's prescription, got %d", len(got))
	}
}
