// Package tracking mutates the per-patient daily tracking blob: water
// glasses, meal adherence entries and activity entries.
package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

const defaultWaterGoal = 8

type AddMealRequest struct {
	Type      string
	Content   string
	PhotoURL  string
	Adherence string
}

type AddActivityRequest struct {
	Name      string
	Duration  int
	Intensity string
}

type Service interface {
	Get(ctx context.Context, patientID string) (domain.PatientTracking, error)
	AdjustWater(ctx context.Context, patientID string, delta int) (domain.PatientTracking, error)
	SetWaterGoal(ctx context.Context, patientID string, goal int) (domain.PatientTracking, error)
	AddMeal(ctx context.Context, patientID string, req AddMealRequest) (domain.TrackedMeal, error)
	AddActivity(ctx context.Context, patientID string, req AddActivityRequest) (domain.TrackedActivity, error)
}

type trackingService struct {
	store *store.Store

	now func() time.Time
}

func New(st *store.Store) Service {
	return &trackingService{store: st, now: time.Now}
}

func (s *trackingService) Get(_ context.Context, patientID string) (domain.PatientTracking, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.PatientTracking{}, ErrPatientNotFound
	}
	return ensureTracking(&p), nil
}

// AdjustWater moves the glass count by delta, clamped to [0, waterGoal].
func (s *trackingService) AdjustWater(ctx context.Context, patientID string, delta int) (domain.PatientTracking, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.PatientTracking{}, ErrPatientNotFound
	}
	t := ensureTracking(&p)

	t.WaterGlassCount += delta
	if t.WaterGlassCount < 0 {
		t.WaterGlassCount = 0
	}
	if t.WaterGlassCount > t.WaterGoal {
		t.WaterGlassCount = t.WaterGoal
	}

	p.Tracking = &t
	s.store.UpdatePatient(ctx, p)
	return t, nil
}

// SetWaterGoal changes the goal and re-clamps the current count against it.
func (s *trackingService) SetWaterGoal(ctx context.Context, patientID string, goal int) (domain.PatientTracking, error) {
	if goal <= 0 {
		return domain.PatientTracking{}, ErrInvalidGoal
	}
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.PatientTracking{}, ErrPatientNotFound
	}
	t := ensureTracking(&p)

	t.WaterGoal = goal
	if t.WaterGlassCount > goal {
		t.WaterGlassCount = goal
	}

	p.Tracking = &t
	s.store.UpdatePatient(ctx, p)
	return t, nil
}

func (s *trackingService) AddMeal(ctx context.Context, patientID string, req AddMealRequest) (domain.TrackedMeal, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.TrackedMeal{}, ErrPatientNotFound
	}
	t := ensureTracking(&p)

	meal := domain.TrackedMeal{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Time:      s.now().Format("15:04"),
		Content:   req.Content,
		PhotoURL:  req.PhotoURL,
		Adherence: req.Adherence,
	}
	t.Meals = append(t.Meals, meal)

	p.Tracking = &t
	s.store.UpdatePatient(ctx, p)
	return meal, nil
}

func (s *trackingService) AddActivity(ctx context.Context, patientID string, req AddActivityRequest) (domain.TrackedActivity, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.TrackedActivity{}, ErrPatientNotFound
	}
	t := ensureTracking(&p)

	act := domain.TrackedActivity{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Duration:  req.Duration,
		Intensity: req.Intensity,
	}
	t.Activities = append(t.Activities, act)

	p.Tracking = &t
	s.store.UpdatePatient(ctx, p)
	return act, nil
}

// ensureTracking returns the patient's tracking blob, initialized with the
// default water goal when absent.
func ensureTracking(p *domain.Patient) domain.PatientTracking {
	if p.Tracking != nil {
		return *p.Tracking
	}
	return domain.PatientTracking{
		WaterGoal:  defaultWaterGoal,
		Meals:      []domain.TrackedMeal{},
		Activities: []domain.TrackedActivity{},
	}
}
