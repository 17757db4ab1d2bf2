package appointment

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

type AddRequest struct {
	PatientID string
	Date      string
	Time      string
	Type      string
}

type Service interface {
	Add(ctx context.Context, req AddRequest) (domain.Appointment, error)
	List(ctx context.Context) []domain.Appointment
	ForDay(ctx context.Context, date string) []domain.Appointment
	ForMonth(ctx context.Context, year int, month time.Month) []domain.Appointment
	Today(ctx context.Context) []domain.Appointment
	Upcoming(ctx context.Context, limit int) []domain.Appointment
}

type appointmentService struct {
	store *store.Store

	now func() time.Time
}

func New(st *store.Store) Service {
	return &appointmentService{store: st, now: time.Now}
}

// Add books an appointment. There is no conflict detection: two bookings on
// the same slot are both kept. The patient name is denormalized onto the
// record at booking time.
func (s *appointmentService) Add(ctx context.Context, req AddRequest) (domain.Appointment, error) {
	if !validDate(req.Date) {
		return domain.Appointment{}, ErrInvalidDate
	}
	if !validTime(req.Time) {
		return domain.Appointment{}, ErrInvalidTime
	}
	p, ok := s.store.Patient(req.PatientID)
	if !ok {
		return domain.Appointment{}, ErrPatientNotFound
	}

	typ := req.Type
	if typ == "" {
		typ = domain.AppointmentTypeRetorno
	}

	appt := domain.Appointment{
		ID:          strconv.FormatInt(s.now().UnixMilli(), 10),
		PatientID:   p.ID,
		PatientName: p.Name,
		Date:        req.Date,
		Time:        req.Time,
		Type:        typ,
		Status:      domain.AppointmentStatusAgendada,
	}
	s.store.AddAppointment(ctx, appt)
	return appt, nil
}

func (s *appointmentService) List(_ context.Context) []domain.Appointment {
	return s.store.Appointments()
}

func (s *appointmentService) ForDay(_ context.Context, date string) []domain.Appointment {
	out := []domain.Appointment{}
	for _, a := range s.store.Appointments() {
		if a.Date == date {
			out = append(out, a)
		}
	}
	sortByTime(out)
	return out
}

func (s *appointmentService) ForMonth(_ context.Context, year int, month time.Month) []domain.Appointment {
	prefix := strconv.Itoa(year) + "-"
	if month < 10 {
		prefix += "0"
	}
	prefix += strconv.Itoa(int(month)) + "-"

	out := []domain.Appointment{}
	for _, a := range s.store.Appointments() {
		if strings.HasPrefix(a.Date, prefix) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (s *appointmentService) Today(ctx context.Context) []domain.Appointment {
	return s.ForDay(ctx, s.now().Format("2006-01-02"))
}

// Upcoming returns the next still-scheduled appointments from today onward,
// soonest first.
func (s *appointmentService) Upcoming(_ context.Context, limit int) []domain.Appointment {
	today := s.now().Format("2006-01-02")
	out := []domain.Appointment{}
	for _, a := range s.store.Appointments() {
		if a.Date >= today && a.Status == domain.AppointmentStatusAgendada {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortByTime(appts []domain.Appointment) {
	sort.Slice(appts, func(i, j int) bool { return appts[i].Time < appts[j].Time })
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
