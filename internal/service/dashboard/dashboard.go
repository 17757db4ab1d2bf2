// Package dashboard recomputes the admin overview from current snapshots.
// Nothing here is cached; every call walks the collections again.
package dashboard

import (
	"context"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/service/appointment"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

type Stats struct {
	TotalPatients     int                  `json:"totalPatients"`
	ActivePatients    int                  `json:"activePatients"`
	AppointmentsToday int                  `json:"appointmentsToday"`
	ConditionCounts   map[string]int       `json:"conditionCounts"`
	NextAppointments  []domain.Appointment `json:"nextAppointments"`
	WeeklyActivity    []WeeklyPoint        `json:"weeklyActivity"`
}

type WeeklyPoint struct {
	Day   string `json:"day"`
	Value int    `json:"value"`
}

type Service interface {
	Stats(ctx context.Context) Stats
}

type dashboardService struct {
	store *store.Store
	appts appointment.Service
}

func New(st *store.Store, appts appointment.Service) Service {
	return &dashboardService{store: st, appts: appts}
}

func (s *dashboardService) Stats(ctx context.Context) Stats {
	patients := s.store.Patients()

	stats := Stats{
		TotalPatients:   len(patients),
		ConditionCounts: map[string]int{},
	}
	for _, p := range patients {
		if p.Status == domain.PatientStatusAtivo {
			stats.ActivePatients++
		}
		if p.Condition != "" {
			stats.ConditionCounts[p.Condition]++
		}
	}

	stats.AppointmentsToday = len(s.appts.Today(ctx))
	stats.NextAppointments = s.appts.Upcoming(ctx, 3)
	stats.WeeklyActivity = weeklyActivity()
	return stats
}

// weeklyActivity is a fixed demo series, not derived from patient records.
// Deriving real adherence per weekday needs tracking history the store does
// not keep yet.
func weeklyActivity() []WeeklyPoint {
	return []WeeklyPoint{
		{Day: "Seg", Value: 4},
		{Day: "Ter", Value: 6},
		{Day: "Qua", Value: 5},
		{Day: "Qui", Value: 8},
		{Day: "Sex", Value: 7},
		{Day: "Sáb", Value: 3},
		{Day: "Dom", Value: 1},
	}
}
