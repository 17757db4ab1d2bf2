package patient

import (
	"context"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) (*patientService, *store.Store) {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	st := store.New(context.Background(), backend)
	return &patientService{store: st, now: func() time.Time {
		return time.Date(2026, 10, 30, 12, 0, 0, 0, time.UTC)
	}}, st
}

func TestCreateDefaults(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{
		Name:      "Beatriz Lima",
		Age:       31,
		Email:     "bia@email.com",
		Condition: domain.ConditionSOP,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
	if p.Status != domain.PatientStatusAtivo {
		t.Errorf("status = %q, want %q", p.Status, domain.PatientStatusAtivo)
	}
	if p.LastVisit != "" || p.NextVisit != "" {
		t.Errorf("visit dates should start empty, got %q / %q", p.LastVisit, p.NextVisit)
	}
	if p.SymptomsLog == nil || len(p.SymptomsLog) != 0 {
		t.Errorf("symptoms log should be empty, got %v", p.SymptomsLog)
	}

	all := st.Patients()
	if all[0].ID != p.ID {
		t.Errorf("new patient should list first, got %q", all[0].ID)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"missing name", CreateRequest{Email: "a@b.com"}, ErrNameRequired},
		{"missing email", CreateRequest{Name: "A"}, ErrEmailRequired},
		{"bad phone", CreateRequest{Name: "A", Email: "a@b.com", Phone: "123"}, ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tt.req); err != tt.want {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreatePhoneNormalization(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.Create(context.Background(), CreateRequest{
		Name:  "Beatriz Lima",
		Email: "bia@email.com",
		Phone: "(11) 98765-4321",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Phone != "+5511987654321" {
		t.Errorf("phone = %q, want E.164", p.Phone)
	}
}

func TestCreateWithPrimaryGoalDefaultDeadline(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.Create(context.Background(), CreateRequest{
		Name:        "Beatriz Lima",
		Email:       "bia@email.com",
		PrimaryGoal: "Reduzir inflamação",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(p.Goals) != 1 {
		t.Fatalf("goals = %d, want 1", len(p.Goals))
	}
	g := p.Goals[0]
	if g.Deadline != "2026-11-30" {
		t.Errorf("deadline = %q, want one month ahead", g.Deadline)
	}
	if g.Status != domain.GoalStatusEmAndamento || g.Progress != 0 {
		t.Errorf("goal should start in progress at 0, got %q/%d", g.Status, g.Progress)
	}
}

func TestGoalProgressAsymmetry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	g, err := svc.UpdateGoalProgress(ctx, "1", "g1", 100)
	if err != nil {
		t.Fatalf("progress to 100: %v", err)
	}
	if g.Status != domain.GoalStatusConcluida {
		t.Errorf("status = %q, want %q", g.Status, domain.GoalStatusConcluida)
	}

	// Lowering progress afterwards must not reopen the goal.
	g, err = svc.UpdateGoalProgress(ctx, "1", "g1", 80)
	if err != nil {
		t.Fatalf("progress to 80: %v", err)
	}
	if g.Progress != 80 {
		t.Errorf("progress = %d, want 80", g.Progress)
	}
	if g.Status != domain.GoalStatusConcluida {
		t.Errorf("status = %q, want it preserved as %q", g.Status, domain.GoalStatusConcluida)
	}
}

func TestGoalProgressLeavesEarlierSnapshotsAlone(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	before, ok := st.Patient("1")
	if !ok {
		t.Fatal("seed patient 1 missing")
	}

	if _, err := svc.UpdateGoalProgress(ctx, "1", "g1", 99); err != nil {
		t.Fatalf("progress: %v", err)
	}

	// The service edits its own copy; a snapshot handed out earlier must
	// still show the old value.
	if got := before.Goals[0].Progress; got != 65 {
		t.Errorf("earlier snapshot progress = %d, want untouched 65", got)
	}
}

func TestGoalProgressClamped(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	g, err := svc.UpdateGoalProgress(ctx, "1", "g1", 250)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if g.Progress != 100 {
		t.Errorf("progress = %d, want clamped to 100", g.Progress)
	}

	g, err = svc.UpdateGoalProgress(ctx, "1", "g1", -5)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if g.Progress != 0 {
		t.Errorf("progress = %d, want clamped to 0", g.Progress)
	}
}

func TestUpsertAnthropometryReplacesSameDate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	rec, err := svc.UpsertAnthropometry(ctx, "1", UpsertAnthropometryRequest{
		Date: "2026-10-15", Weight: 59.0, Height: 165, Waist: 67, Hip: 95,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if rec.BMI != 21.7 {
		t.Errorf("bmi = %v, want recomputed 21.7", rec.BMI)
	}

	recs, err := svc.ListAnthropometry(ctx, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	count := 0
	for _, r := range recs {
		if r.Date == "2026-10-15" {
			count++
			if r.Weight != 59.0 {
				t.Errorf("weight = %v, want replacement to win", r.Weight)
			}
		}
	}
	if count != 1 {
		t.Errorf("records on 2026-10-15 = %d, want exactly 1", count)
	}
}

func TestUpsertAnthropometryDateChangeCollapses(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Move the 2026-08-10 record onto 2026-09-15, which is already taken.
	// Both the old-date record and the occupant must go.
	_, err := svc.UpsertAnthropometry(ctx, "1", UpsertAnthropometryRequest{
		OriginalDate: "2026-08-10",
		Date:         "2026-09-15",
		Weight:       62.0, Height: 165, Waist: 71, Hip: 97,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	recs, err := svc.ListAnthropometry(ctx, "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2 (old and occupant collapsed)", len(recs))
	}
	dates := map[string]float64{}
	for _, r := range recs {
		dates[r.Date] = r.Weight
	}
	if _, ok := dates["2026-08-10"]; ok {
		t.Error("old-date record should be gone")
	}
	if w := dates["2026-09-15"]; w != 62.0 {
		t.Errorf("2026-09-15 weight = %v, want the moved record", w)
	}
}

func TestDeleteAndClearAnthropometry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.DeleteAnthropometry(ctx, "1", "2026-08-10"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteAnthropometry(ctx, "1", "2026-08-10"); err != ErrRecordNotFound {
		t.Errorf("second delete err = %v, want %v", err, ErrRecordNotFound)
	}

	if err := svc.ClearAnthropometry(ctx, "1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	recs, _ := svc.ListAnthropometry(ctx, "1")
	if len(recs) != 0 {
		t.Errorf("records = %d, want 0 after clear", len(recs))
	}
}

func TestListFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	got := svc.List(ctx, ListRequest{Search: "ana"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("search ana = %v patients", len(got))
	}

	got = svc.List(ctx, ListRequest{Condition: domain.ConditionSOP})
	if len(got) != 1 || got[0].ID != "4" {
		t.Errorf("condition filter = %v patients", len(got))
	}

	got = svc.List(ctx, ListRequest{Status: domain.PatientStatusPendente})
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("status filter = %v patients", len(got))
	}
}

func TestDeleteUnknownPatient(t *testing.T) {
	svc, _ := newTestService(t)
	if err := svc.Delete(context.Background(), "missing"); err != ErrPatientNotFound {
		t.Errorf("err = %v, want %v", err, ErrPatientNotFound)
	}
}
