package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/pkg/constants"
)

func newTestStore(t *testing.T) (*Store, storage.Storage) {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	st := New(context.Background(), backend)
	st.now = func() time.Time { return time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC) }
	return st, backend
}

func TestNewSeedsWhenEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	if got := len(st.Patients()); got != 4 {
		t.Errorf("patients = %d, want 4", got)
	}
	if got := len(st.Appointments()); got != 3 {
		t.Errorf("appointments = %d, want 3", got)
	}
	if got := st.Profile().Name; got != "Maíra Penna" {
		t.Errorf("profile name = %q", got)
	}
}

func TestNewSurvivesCorruptBlob(t *testing.T) {
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	ctx := context.Background()
	if err := backend.Save(ctx, constants.KeyPatients, []byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	st := New(ctx, backend)
	if got := len(st.Patients()); got != 4 {
		t.Errorf("patients = %d, want seed fallback of 4", got)
	}
}

func TestCreatePatientShape(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	p := st.CreatePatient(ctx, domain.Patient{
		Name:      "Nova Paciente",
		Email:     "nova@email.com",
		LastVisit: "2020-01-01",
		NextVisit: "2020-02-01",
	})

	if p.ID != "1793361600000" {
		t.Errorf("id = %q, want unix-millis of the fixed clock", p.ID)
	}
	if p.LastVisit != "" || p.NextVisit != "" {
		t.Errorf("visit dates should be reset, got %q / %q", p.LastVisit, p.NextVisit)
	}
	if p.SymptomsLog == nil || p.Anthropometry == nil {
		t.Error("log collections should be initialized empty")
	}

	all := st.Patients()
	if all[0].ID != p.ID {
		t.Errorf("new patient should be first, got %q", all[0].ID)
	}
	if len(all) != 5 {
		t.Errorf("patients = %d, want 5", len(all))
	}
}

func TestUpdatePatientUnknownIsNoOp(t *testing.T) {
	st, _ := newTestStore(t)

	before := st.Patients()
	st.UpdatePatient(context.Background(), domain.Patient{ID: "ghost", Name: "Ghost"})
	after := st.Patients()
	if len(before) != len(after) {
		t.Errorf("collection changed: %d -> %d", len(before), len(after))
	}
}

func TestMutationsPersistThrough(t *testing.T) {
	st, backend := newTestStore(t)
	ctx := context.Background()

	st.CreatePatient(ctx, domain.Patient{Name: "Persistida", Email: "p@email.com"})

	b, err := backend.Load(ctx, constants.KeyPatients)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var stored []domain.Patient
	if err := json.Unmarshal(b, &stored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(stored) != 5 || stored[0].Name != "Persistida" {
		t.Errorf("stored = %d patients, first %q", len(stored), stored[0].Name)
	}
}

func TestResetAll(t *testing.T) {
	st, backend := newTestStore(t)
	ctx := context.Background()

	st.CreatePatient(ctx, domain.Patient{Name: "Extra", Email: "x@email.com"})
	st.SaveProfile(ctx, domain.Profile{Name: "Outro"})

	if err := st.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if got := len(st.Patients()); got != 4 {
		t.Errorf("patients = %d, want 4", got)
	}
	if got := st.Profile().Name; got != "Maíra Penna" {
		t.Errorf("profile = %q, want seed default", got)
	}

	// The persisted blob must hold seed data again, not the old state.
	b, err := backend.Load(ctx, constants.KeyPatients)
	if err != nil {
		t.Fatalf("load after reset: %v", err)
	}
	var stored []domain.Patient
	if err := json.Unmarshal(b, &stored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(stored) != 4 || stored[0].Name != "Ana Júlia Silva" {
		t.Errorf("stored = %d patients, first %q", len(stored), stored[0].Name)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	st, _ := newTestStore(t)

	snap := st.Patients()
	snap[0].Name = "Mutada"

	if got, _ := st.Patient(snap[0].ID); got.Name == "Mutada" {
		t.Error("mutating a snapshot must not touch canonical state")
	}
}

func TestSnapshotsCopyNestedState(t *testing.T) {
	st, _ := newTestStore(t)

	// Seed patient 1 carries goals, anthropometry, a meal plan and tracking.
	snap, ok := st.Patient("1")
	if !ok {
		t.Fatal("seed patient 1 missing")
	}

	snap.Goals[0].Progress = 99
	snap.Anthropometry[0].Weight = 1
	snap.MealPlan.Meals[0].Items[0].Name = "Mutada"
	snap.Anamnesis.Medications[0] = "Mutada"

	canon, _ := st.Patient("1")
	if canon.Goals[0].Progress == 99 {
		t.Error("goal edit on a snapshot reached canonical state")
	}
	if canon.Anthropometry[0].Weight == 1 {
		t.Error("anthropometry edit on a snapshot reached canonical state")
	}
	if canon.MealPlan.Meals[0].Items[0].Name == "Mutada" {
		t.Error("meal-plan edit on a snapshot reached canonical state")
	}
	if canon.Anamnesis.Medications[0] == "Mutada" {
		t.Error("anamnesis edit on a snapshot reached canonical state")
	}
}

func TestUpdatePatientDoesNotAliasCaller(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	p, _ := st.Patient("1")
	st.UpdatePatient(ctx, p)

	// The caller keeps editing its struct after the write; canonical state
	// must not follow.
	p.Goals[0].Progress = 99

	canon, _ := st.Patient("1")
	if canon.Goals[0].Progress == 99 {
		t.Error("caller's struct still aliases canonical state after update")
	}
}
