package app

import (
	"context"
	"testing"
	"time"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
	"github.com/mairapenna/nutriplan_backend/pkg/email"
)

func newTestWorker(t *testing.T) (*ReminderWorker, *store.Store) {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	st := store.New(context.Background(), backend)

	mailer, err := email.New(email.Config{Enabled: false})
	if err != nil {
		t.Fatalf("email client: %v", err)
	}

	w := &ReminderWorker{
		store:  st,
		mailer: mailer,
		cfg:    config.RemindersConfig{Enabled: true, IntervalMinutes: 15},
		sent:   map[string]bool{},
		now:    func() time.Time { return time.Date(2026, 10, 30, 8, 0, 0, 0, time.UTC) },
	}
	return w, st
}

func TestTickMarksTodayAppointments(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	w.Tick(ctx)

	// All three seed appointments are on 2026-10-30.
	for _, id := range []string{"101", "102", "103"} {
		if !w.sent[id] {
			t.Errorf("appointment %s not marked sent", id)
		}
	}
}

func TestTickSendsOncePerAppointment(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx := context.Background()

	w.Tick(ctx)
	before := len(w.sent)
	w.Tick(ctx)
	if len(w.sent) != before {
		t.Errorf("sent set grew on second tick: %d -> %d", before, len(w.sent))
	}
}

func TestTickHonorsNotificationToggle(t *testing.T) {
	w, st := newTestWorker(t)
	ctx := context.Background()

	prefs := st.Notifications()
	prefs.Appointments = false
	st.SaveNotifications(ctx, prefs)

	w.Tick(ctx)
	if len(w.sent) != 0 {
		t.Errorf("reminders sent despite disabled toggle: %v", w.sent)
	}
}

func TestTickSkipsOtherDays(t *testing.T) {
	w, _ := newTestWorker(t)
	w.now = func() time.Time { return time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC) }

	w.Tick(context.Background())
	if len(w.sent) != 0 {
		t.Errorf("reminders sent for a day without appointments: %v", w.sent)
	}
}

func TestTickSkipsCancelled(t *testing.T) {
	w, st := newTestWorker(t)
	ctx := context.Background()

	st.AddAppointment(ctx, domain.Appointment{
		ID: "201", PatientID: "1", PatientName: "Ana Júlia Silva",
		Date: "2026-10-30", Time: "16:00",
		Type: domain.AppointmentTypeRetorno, Status: domain.AppointmentStatusCancelada,
	})

	w.Tick(ctx)
	if w.sent["201"] {
		t.Error("cancelled appointment should not get a reminder")
	}
}
