package patient

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	Name      string
	Age       int
	Email     string
	Phone     string
	Condition string
	Stage     string
	Anamnesis *domain.Anamnesis
	MealPlan  *domain.MealPlan
	// PrimaryGoal seeds the goal list from the intake form.
	PrimaryGoal  string
	GoalDeadline string
}

type ListRequest struct {
	Search    string
	Condition string
	Status    string
}

type AddGoalRequest struct {
	Description string
	Deadline    string
}

type UpsertAnthropometryRequest struct {
	// OriginalDate is set when editing an existing record; it lets the
	// service tell "modification of date X" apart from a brand-new entry.
	OriginalDate string
	Date         string
	Weight       float64
	Height       float64
	Waist        float64
	Hip          float64
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (domain.Patient, error)
	GetByID(ctx context.Context, id string) (domain.Patient, error)
	List(ctx context.Context, req ListRequest) []domain.Patient
	Update(ctx context.Context, p domain.Patient) (domain.Patient, error)
	Delete(ctx context.Context, id string) error

	AddGoal(ctx context.Context, patientID string, req AddGoalRequest) (domain.PatientGoal, error)
	UpdateGoalProgress(ctx context.Context, patientID, goalID string, progress int) (domain.PatientGoal, error)
	UpdateGoalStatus(ctx context.Context, patientID, goalID, status string) (domain.PatientGoal, error)
	DeleteGoal(ctx context.Context, patientID, goalID string) error

	UpsertAnthropometry(ctx context.Context, patientID string, req UpsertAnthropometryRequest) (domain.AnthropometryRecord, error)
	ListAnthropometry(ctx context.Context, patientID string) ([]domain.AnthropometryRecord, error)
	DeleteAnthropometry(ctx context.Context, patientID, date string) error
	ClearAnthropometry(ctx context.Context, patientID string) error

	UpdateAnamnesis(ctx context.Context, patientID string, a domain.Anamnesis) error
}

type patientService struct {
	store *store.Store

	now func() time.Time
}

func New(st *store.Store) Service {
	return &patientService{store: st, now: time.Now}
}

// ---------------------------------------------------------------------------
// Patient CRUD
// ---------------------------------------------------------------------------

func (s *patientService) Create(ctx context.Context, req CreateRequest) (domain.Patient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return domain.Patient{}, ErrNameRequired
	}
	if strings.TrimSpace(req.Email) == "" {
		return domain.Patient{}, ErrEmailRequired
	}

	phone, err := normalizePhone(req.Phone)
	if err != nil {
		return domain.Patient{}, err
	}

	p := domain.Patient{
		Name:      strings.TrimSpace(req.Name),
		Age:       req.Age,
		Email:     strings.TrimSpace(req.Email),
		Phone:     phone,
		Condition: req.Condition,
		Stage:     req.Stage,
		Status:    domain.PatientStatusAtivo,
		AvatarURL: "https://ui-avatars.com/api/?name=" + strings.ReplaceAll(strings.TrimSpace(req.Name), " ", "+") + "&background=ffe4e6&color=903c4c",
		Anamnesis: req.Anamnesis,
		MealPlan:  req.MealPlan,
	}

	if strings.TrimSpace(req.PrimaryGoal) != "" {
		deadline := req.GoalDeadline
		if deadline == "" {
			deadline = oneMonthFrom(s.now())
		}
		p.Goals = []domain.PatientGoal{{
			ID:          uuid.NewString(),
			Description: req.PrimaryGoal,
			Deadline:    deadline,
			Status:      domain.GoalStatusEmAndamento,
			Progress:    0,
		}}
	}

	return s.store.CreatePatient(ctx, p), nil
}

func (s *patientService) GetByID(_ context.Context, id string) (domain.Patient, error) {
	p, ok := s.store.Patient(id)
	if !ok {
		return domain.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

func (s *patientService) List(_ context.Context, req ListRequest) []domain.Patient {
	patients := s.store.Patients()
	if req.Search == "" && req.Condition == "" && req.Status == "" {
		return patients
	}

	q := strings.ToLower(strings.TrimSpace(req.Search))
	out := make([]domain.Patient, 0, len(patients))
	for _, p := range patients {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Email), q) {
			continue
		}
		if req.Condition != "" && p.Condition != req.Condition {
			continue
		}
		if req.Status != "" && p.Status != req.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *patientService) Update(ctx context.Context, p domain.Patient) (domain.Patient, error) {
	if _, ok := s.store.Patient(p.ID); !ok {
		return domain.Patient{}, ErrPatientNotFound
	}
	s.store.UpdatePatient(ctx, p)
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, id string) error {
	if !s.store.DeletePatient(ctx, id) {
		return ErrPatientNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Goals
// ---------------------------------------------------------------------------

func (s *patientService) AddGoal(ctx context.Context, patientID string, req AddGoalRequest) (domain.PatientGoal, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.PatientGoal{}, ErrPatientNotFound
	}

	deadline := strings.TrimSpace(req.Deadline)
	if deadline == "" {
		deadline = oneMonthFrom(s.now())
	}

	goal := domain.PatientGoal{
		ID:          uuid.NewString(),
		Description: req.Description,
		Deadline:    deadline,
		Status:      domain.GoalStatusEmAndamento,
		Progress:    0,
	}
	p.Goals = append(p.Goals, goal)
	s.store.UpdatePatient(ctx, p)
	return goal, nil
}

// UpdateGoalProgress clamps progress to [0,100]. Hitting exactly 100 forces
// the status to Concluída; lowering it afterwards leaves the status alone.
// The asymmetry is intentional: a completed goal stays completed until the
// nutritionist changes it explicitly.
func (s *patientService) UpdateGoalProgress(ctx context.Context, patientID, goalID string, progress int) (domain.PatientGoal, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.PatientGoal{}, ErrPatientNotFound
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	for i, g := range p.Goals {
		if g.ID != goalID {
			continue
		}
		g.Progress = progress
		if progress == 100 {
			g.Status = domain.GoalStatusConcluida
		}
		p.Goals[i] = g
		s.store.UpdatePatient(ctx, p)
		return g, nil
	}
	return domain.PatientGoal{}, ErrGoalNotFound
}

func (s *patientService) UpdateGoalStatus(ctx context.Context, patientID, goalID, status string) (domain.PatientGoal, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.PatientGoal{}, ErrPatientNotFound
	}
	for i, g := range p.Goals {
		if g.ID != goalID {
			continue
		}
		g.Status = status
		p.Goals[i] = g
		s.store.UpdatePatient(ctx, p)
		return g, nil
	}
	return domain.PatientGoal{}, ErrGoalNotFound
}

func (s *patientService) DeleteGoal(ctx context.Context, patientID, goalID string) error {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	next := make([]domain.PatientGoal, 0, len(p.Goals))
	found := false
	for _, g := range p.Goals {
		if g.ID == goalID {
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return ErrGoalNotFound
	}
	p.Goals = next
	s.store.UpdatePatient(ctx, p)
	return nil
}

// ---------------------------------------------------------------------------
// Anthropometry
// ---------------------------------------------------------------------------

// UpsertAnthropometry enforces at most one record per date. A plain submit
// replaces any record already on that date. An edit that moves a record to
// a new date removes both the old-date record and whatever sat at the new
// date: the new date always wins and duplicates collapse.
func (s *patientService) UpsertAnthropometry(ctx context.Context, patientID string, req UpsertAnthropometryRequest) (domain.AnthropometryRecord, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return domain.AnthropometryRecord{}, ErrPatientNotFound
	}
	if !validDate(req.Date) {
		return domain.AnthropometryRecord{}, ErrInvalidDate
	}

	rec := domain.AnthropometryRecord{
		Date:   req.Date,
		Weight: req.Weight,
		Height: req.Height,
		Waist:  req.Waist,
		Hip:    req.Hip,
		BMI:    domain.CalculateBMI(req.Weight, req.Height),
	}

	next := make([]domain.AnthropometryRecord, 0, len(p.Anthropometry)+1)
	for _, r := range p.Anthropometry {
		if r.Date == req.Date {
			continue
		}
		if req.OriginalDate != "" && r.Date == req.OriginalDate {
			continue
		}
		next = append(next, r)
	}
	next = append(next, rec)
	sort.Slice(next, func(i, j int) bool { return next[i].Date < next[j].Date })

	p.Anthropometry = next
	s.store.UpdatePatient(ctx, p)
	return rec, nil
}

// ListAnthropometry returns records ascending by date (chart order); the
// table view reverses it client-side.
func (s *patientService) ListAnthropometry(_ context.Context, patientID string) ([]domain.AnthropometryRecord, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return nil, ErrPatientNotFound
	}
	out := make([]domain.AnthropometryRecord, len(p.Anthropometry))
	copy(out, p.Anthropometry)
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *patientService) DeleteAnthropometry(ctx context.Context, patientID, date string) error {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	next := make([]domain.AnthropometryRecord, 0, len(p.Anthropometry))
	found := false
	for _, r := range p.Anthropometry {
		if r.Date == date {
			found = true
			continue
		}
		next = append(next, r)
	}
	if !found {
		return ErrRecordNotFound
	}
	p.Anthropometry = next
	s.store.UpdatePatient(ctx, p)
	return nil
}

func (s *patientService) ClearAnthropometry(ctx context.Context, patientID string) error {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	p.Anthropometry = []domain.AnthropometryRecord{}
	s.store.UpdatePatient(ctx, p)
	return nil
}

// ---------------------------------------------------------------------------
// Anamnesis
// ---------------------------------------------------------------------------

func (s *patientService) UpdateAnamnesis(ctx context.Context, patientID string, a domain.Anamnesis) error {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return ErrPatientNotFound
	}
	p.Anamnesis = &a
	s.store.UpdatePatient(ctx, p)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// oneMonthFrom is the default goal deadline: one calendar month ahead,
// with Go's AddDate overflow rules (Jan 31 -> Mar 2/3).
func oneMonthFrom(t time.Time) string {
	return t.AddDate(0, 1, 0).Format("2006-01-02")
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func normalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	num, err := phonenumbers.Parse(raw, "BR")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
