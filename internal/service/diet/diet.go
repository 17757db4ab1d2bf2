package diet

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type ShoppingItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

type ShoppingList struct {
	Days  int            `json:"days"`
	Items []ShoppingItem `json:"items"`
}

type Service interface {
	GetMealPlan(ctx context.Context, patientID string) (domain.MealPlan, error)
	SaveMealPlan(ctx context.Context, patientID string, plan domain.MealPlan) error
	Totals(ctx context.Context, patientID string) (MacroTotals, error)
	BuildShoppingList(ctx context.Context, patientID string, days int) (ShoppingList, error)
	NextMeal(ctx context.Context, patientID string, now time.Time) (domain.Meal, error)
	SearchFood(ctx context.Context, query string) ([]FoodProduct, error)
}

type dietService struct {
	store *store.Store
	foods *FoodClient
}

func New(st *store.Store, foods *FoodClient) Service {
	return &dietService{store: st, foods: foods}
}

func (s *dietService) GetMealPlan(_ context.Context, patientID string) (domain.MealPlan, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.MealPlan{}, ErrPatientNotFound
	}
	if p.MealPlan == nil {
		return domain.MealPlan{}, ErrNoMealPlan
	}
	return *p.MealPlan, nil
}

// SaveMealPlan commits a full plan. Drafting happens client-side; a save
// always replaces the whole plan.
func (s *dietService) SaveMealPlan(ctx context.Context, patientID string, plan domain.MealPlan) error {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	p.MealPlan = &plan
	s.store.UpdatePatient(ctx, p)
	return nil
}

func (s *dietService) Totals(_ context.Context, patientID string) (MacroTotals, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return MacroTotals{}, ErrPatientNotFound
	}
	if p.MealPlan == nil {
		return MacroTotals{}, ErrNoMealPlan
	}

	var t MacroTotals
	for _, meal := range p.MealPlan.Meals {
		for _, item := range meal.Items {
			t.Calories += item.Calories
			t.Protein += item.Protein
			t.Carbs += item.Carbs
			t.Fats += item.Fats
		}
	}
	return t, nil
}

// BuildShoppingList flattens the plan's items deduplicated by name. The
// first occurrence's quantity wins; quantities are free-text strings
// ("2 unidades", "à vontade") so there is no multiplication by days. Days
// is carried through for the header only.
func (s *dietService) BuildShoppingList(_ context.Context, patientID string, days int) (ShoppingList, error) {
	if days != 3 && days != 7 && days != 15 {
		return ShoppingList{}, ErrInvalidDays
	}
	p, ok := s.store.Patient(patientID)
	if !ok {
		return ShoppingList{}, ErrPatientNotFound
	}
	if p.MealPlan == nil {
		return ShoppingList{}, ErrNoMealPlan
	}

	// Exact-name keying: "Ovos" and "ovos" stay separate entries.
	seen := map[string]bool{}
	list := ShoppingList{Days: days, Items: []ShoppingItem{}}
	for _, meal := range p.MealPlan.Meals {
		for _, item := range meal.Items {
			if seen[item.Name] {
				continue
			}
			seen[item.Name] = true
			list.Items = append(list.Items, ShoppingItem{Name: item.Name, Quantity: item.Quantity})
		}
	}
	return list, nil
}

// NextMeal returns the first meal strictly after now, comparing
// minutes-since-midnight, wrapping to the earliest meal when the day's
// meals are all past.
func (s *dietService) NextMeal(_ context.Context, patientID string, now time.Time) (domain.Meal, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.Meal{}, ErrPatientNotFound
	}
	if p.MealPlan == nil || len(p.MealPlan.Meals) == 0 {
		return domain.Meal{}, ErrNoMealPlan
	}

	meals := make([]domain.Meal, len(p.MealPlan.Meals))
	copy(meals, p.MealPlan.Meals)
	sort.Slice(meals, func(i, j int) bool {
		return mealMinutes(meals[i].Time) < mealMinutes(meals[j].Time)
	})

	current := now.Hour()*60 + now.Minute()
	for _, m := range meals {
		if mealMinutes(m.Time) > current {
			return m, nil
		}
	}
	return meals[0], nil
}

func (s *dietService) SearchFood(ctx context.Context, query string) ([]FoodProduct, error) {
	return s.foods.Search(ctx, query)
}

// mealMinutes parses "HH:MM" into minutes since midnight; malformed times
// sort first.
func mealMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return h*60 + m
}
