package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) *appointmentService {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	st := store.New(context.Background(), backend)
	return &appointmentService{store: st, now: func() time.Time {
		return time.Date(2026, 10, 30, 8, 0, 0, 0, time.UTC)
	}}
}

func TestAddDenormalizesPatientName(t *testing.T) {
	svc := newTestService(t)

	appt, err := svc.Add(context.Background(), AddRequest{
		PatientID: "1",
		Date:      "2026-11-20",
		Time:      "10:00",
		Type:      domain.AppointmentTypeOnline,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if appt.PatientName != "Ana Júlia Silva" {
		t.Errorf("patientName = %q", appt.PatientName)
	}
	if appt.Status != domain.AppointmentStatusAgendada {
		t.Errorf("status = %q", appt.Status)
	}
}

func TestAddValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  AddRequest
		want error
	}{
		{"bad date", AddRequest{PatientID: "1", Date: "20-11-2026", Time: "10:00"}, ErrInvalidDate},
		{"bad time", AddRequest{PatientID: "1", Date: "2026-11-20", Time: "10h"}, ErrInvalidTime},
		{"unknown patient", AddRequest{PatientID: "nope", Date: "2026-11-20", Time: "10:00"}, ErrPatientNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Add(ctx, tt.req); err != tt.want {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDoubleBookingAllowed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Seed already has 09:00 on 2026-10-30 for patient 1.
	if _, err := svc.Add(ctx, AddRequest{PatientID: "2", Date: "2026-10-30", Time: "09:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	day := svc.ForDay(ctx, "2026-10-30")
	count := 0
	for _, a := range day {
		if a.Time == "09:00" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("09:00 bookings = %d, want 2 (no conflict detection)", count)
	}
}

func TestForDaySortedByTime(t *testing.T) {
	svc := newTestService(t)

	day := svc.ForDay(context.Background(), "2026-10-30")
	if len(day) != 3 {
		t.Fatalf("appointments = %d, want 3", len(day))
	}
	for i := 1; i < len(day); i++ {
		if day[i-1].Time > day[i].Time {
			t.Errorf("not sorted: %q before %q", day[i-1].Time, day[i].Time)
		}
	}
}

func TestForMonth(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, AddRequest{PatientID: "1", Date: "2026-11-02", Time: "09:00"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	oct := svc.ForMonth(ctx, 2026, time.October)
	if len(oct) != 3 {
		t.Errorf("october = %d, want 3", len(oct))
	}
	nov := svc.ForMonth(ctx, 2026, time.November)
	if len(nov) != 1 {
		t.Errorf("november = %d, want 1", len(nov))
	}
}

func TestUpcomingLimit(t *testing.T) {
	svc := newTestService(t)

	got := svc.Upcoming(context.Background(), 2)
	if len(got) != 2 {
		t.Fatalf("upcoming = %d, want 2", len(got))
	}
	if got[0].Time != "09:00" || got[1].Time != "11:00" {
		t.Errorf("order = %q, %q", got[0].Time, got[1].Time)
	}
}
