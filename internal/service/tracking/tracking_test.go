package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) *trackingService {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	return &trackingService{
		store: store.New(context.Background(), backend),
		now:   func() time.Time { return time.Date(2026, 10, 30, 12, 30, 0, 0, time.UTC) },
	}
}

func TestAdjustWaterClamps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tr, err := svc.AdjustWater(ctx, "1", -3)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if tr.WaterGlassCount != 0 {
		t.Errorf("count = %d, want clamped to 0", tr.WaterGlassCount)
	}

	tr, err = svc.AdjustWater(ctx, "1", 50)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if tr.WaterGlassCount != tr.WaterGoal {
		t.Errorf("count = %d, want clamped to goal %d", tr.WaterGlassCount, tr.WaterGoal)
	}
}

func TestSetWaterGoalReclamps(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AdjustWater(ctx, "1", 8); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	tr, err := svc.SetWaterGoal(ctx, "1", 5)
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	if tr.WaterGoal != 5 || tr.WaterGlassCount != 5 {
		t.Errorf("goal/count = %d/%d, want 5/5", tr.WaterGoal, tr.WaterGlassCount)
	}

	if _, err := svc.SetWaterGoal(ctx, "1", 0); err != ErrInvalidGoal {
		t.Errorf("err = %v, want %v", err, ErrInvalidGoal)
	}
}

func TestAddMealStampsTime(t *testing.T) {
	svc := newTestService(t)

	meal, err := svc.AddMeal(context.Background(), "1", AddMealRequest{
		Type: "Almoço", Content: "Peixe e salada", Adherence: "Sim",
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if meal.ID == "" {
		t.Error("expected generated id")
	}
	if meal.Time != "12:30" {
		t.Errorf("time = %q, want 12:30", meal.Time)
	}

	tr, _ := svc.Get(context.Background(), "1")
	if len(tr.Meals) != 1 {
		t.Errorf("meals = %d, want 1", len(tr.Meals))
	}
}

func TestAddActivityPersists(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddActivity(ctx, "1", AddActivityRequest{
		Name: "Pilates", Duration: 45, Intensity: "Moderada",
	}); err != nil {
		t.Fatalf("add activity: %v", err)
	}

	tr, err := svc.Get(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(tr.Activities) != 1 || tr.Activities[0].Name != "Pilates" {
		t.Errorf("activities = %+v", tr.Activities)
	}
}

func TestUnknownPatient(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Get(context.Background(), "missing"); err != ErrPatientNotFound {
		t.Errorf("err = %v, want %v", err, ErrPatientNotFound)
	}
}
