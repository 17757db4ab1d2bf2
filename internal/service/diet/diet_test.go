package diet

import (
	"context"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) *dietService {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	return &dietService{store: store.New(context.Background(), backend)}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 10, 30, hour, min, 0, 0, time.UTC)
}

func TestNextMeal(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Seed patient 1 eats at 07:30, 10:30, 13:00, 16:00 and 20:00.
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before breakfast", at(6, 0), "07:30"},
		{"exactly at a meal", at(13, 0), "16:00"},
		{"mid afternoon", at(14, 30), "16:00"},
		{"after last meal wraps", at(21, 0), "07:30"},
		{"midnight wraps", at(0, 0), "07:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := svc.NextMeal(ctx, "1", tt.now)
			if err != nil {
				t.Fatalf("next meal: %v", err)
			}
			if m.Time != tt.want {
				t.Errorf("next meal at %v = %q, want %q", tt.now.Format("15:04"), m.Time, tt.want)
			}
		})
	}
}

func TestNextMealNoPlan(t *testing.T) {
	svc := newTestService(t)
	// Patient 2 has no plan.
	if _, err := svc.NextMeal(context.Background(), "2", at(12, 0)); err != ErrNoMealPlan {
		t.Errorf("err = %v, want %v", err, ErrNoMealPlan)
	}
}

func TestShoppingListDedupKeepsFirstQuantity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	p, _ := svc.store.Patient("1")
	p.MealPlan.Meals = append(p.MealPlan.Meals, domain.Meal{
		ID: "6", Time: "22:00", Name: "Ceia",
		Items: []domain.FoodItem{
			{ID: "f18", Name: "Ovos mexidos", Quantity: "3 unidades", Calories: 210},
		},
	})
	svc.store.UpdatePatient(ctx, p)

	list, err := svc.BuildShoppingList(ctx, "1", 7)
	if err != nil {
		t.Fatalf("shopping list: %v", err)
	}
	if list.Days != 7 {
		t.Errorf("days = %d, want 7", list.Days)
	}

	count := 0
	for _, item := range list.Items {
		if item.Name == "Ovos mexidos" {
			count++
			if item.Quantity != "2 unidades" {
				t.Errorf("quantity = %q, want the first occurrence kept", item.Quantity)
			}
		}
	}
	if count != 1 {
		t.Errorf("duplicate items = %d entries, want collapsed to 1", count)
	}
}

func TestShoppingListDedupIsCaseSensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Names are keyed exactly as written: a different casing is a
	// different entry, not a duplicate.
	p, _ := svc.store.Patient("1")
	p.MealPlan.Meals = append(p.MealPlan.Meals, domain.Meal{
		ID: "6", Time: "22:00", Name: "Ceia",
		Items: []domain.FoodItem{
			{ID: "f18", Name: "ovos mexidos", Quantity: "1 unidade", Calories: 70},
		},
	})
	svc.store.UpdatePatient(ctx, p)

	list, err := svc.BuildShoppingList(ctx, "1", 7)
	if err != nil {
		t.Fatalf("shopping list: %v", err)
	}

	var exact, lower bool
	for _, item := range list.Items {
		switch item.Name {
		case "Ovos mexidos":
			exact = true
		case "ovos mexidos":
			lower = true
		}
	}
	if !exact || !lower {
		t.Errorf("exact=%v lower=%v, want both casings listed", exact, lower)
	}
}

func TestShoppingListInvalidDays(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.BuildShoppingList(context.Background(), "1", 5); err != ErrInvalidDays {
		t.Errorf("err = %v, want %v", err, ErrInvalidDays)
	}
}

func TestTotalsSumAllItems(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Totals(context.Background(), "1")
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if got.Calories != 1395 {
		t.Errorf("calories = %v, want 1395", got.Calories)
	}
	if got.Protein != 107 {
		t.Errorf("protein = %v, want 107", got.Protein)
	}
}

func TestSaveMealPlanReplacesWhole(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	plan := domain.MealPlan{
		Title:       "Novo protocolo",
		CaloricGoal: 1600,
		Meals: []domain.Meal{
			{ID: "1", Time: "08:00", Name: "Café da Manhã"},
		},
	}
	if err := svc.SaveMealPlan(ctx, "1", plan); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.GetMealPlan(ctx, "1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Novo protocolo" || len(got.Meals) != 1 {
		t.Errorf("plan = %q with %d meals", got.Title, len(got.Meals))
	}
}
