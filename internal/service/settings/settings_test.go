package settings

import (
	"context"
	"testing"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) (Service, *store.Store) {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	st := store.New(context.Background(), backend)
	return New(st), st
}

func TestSaveProfile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SaveProfile(ctx, domain.Profile{Name: "  "}); err != ErrNameRequired {
		t.Errorf("err = %v, want %v", err, ErrNameRequired)
	}

	want := domain.Profile{Name: "Dra. Maíra Penna", Role: "Nutricionista • CRN 12345"}
	if err := svc.SaveProfile(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := svc.Profile(ctx); got != want {
		t.Errorf("profile = %+v, want %+v", got, want)
	}
}

func TestSaveNotifications(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	want := domain.NotificationPrefs{Appointments: false, Messages: true, Diaries: true}
	if err := svc.SaveNotifications(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := svc.Notifications(ctx); got != want {
		t.Errorf("prefs = %+v, want %+v", got, want)
	}
}

func TestResetAllRestoresSeed(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	st.CreatePatient(ctx, domain.Patient{Name: "Extra", Email: "x@email.com"})
	if err := svc.SaveProfile(ctx, domain.Profile{Name: "Outro Nome"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	if err := svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if got := len(st.Patients()); got != 4 {
		t.Errorf("patients = %d, want the 4 seed records", got)
	}
	if got := svc.Profile(ctx); got.Name != "Maíra Penna" {
		t.Errorf("profile = %+v, want seed default", got)
	}
	if got := svc.Notifications(ctx); !got.Appointments || !got.Messages || got.Diaries {
		t.Errorf("prefs = %+v, want seed defaults", got)
	}
}
