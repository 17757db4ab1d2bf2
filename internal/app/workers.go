package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
	"github.com/mairapenna/nutriplan_backend/pkg/email"
)

// WorkerModule starts the background workers.
var WorkerModule = fx.Module("workers",
	fx.Provide(NewReminderWorker),
	fx.Invoke(StartReminderWorker),
)

// ReminderWorker emails today's scheduled patients. It honors the
// appointment-notification toggle on every tick, resolves the patient by id
// at send time (the denormalized name on the appointment may be stale) and
// sends at most one reminder per appointment per process run.
type ReminderWorker struct {
	store  *store.Store
	mailer *email.Client
	cfg    config.RemindersConfig

	mu   sync.Mutex
	sent map[string]bool

	now func() time.Time
}

func NewReminderWorker(st *store.Store, mailer *email.Client, cfg *config.Config) *ReminderWorker {
	return &ReminderWorker{
		store:  st,
		mailer: mailer,
		cfg:    cfg.Reminders,
		sent:   map[string]bool{},
		now:    time.Now,
	}
}

func StartReminderWorker(lc fx.Lifecycle, w *ReminderWorker) {
	if !w.cfg.Enabled {
		return
	}

	interval := time.Duration(w.cfg.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(interval)
				defer ticker.Stop()
				w.Tick(ctx)
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						w.Tick(ctx)
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

// Tick runs one reminder pass.
func (w *ReminderWorker) Tick(ctx context.Context) {
	if !w.store.Notifications().Appointments {
		return
	}

	today := w.now().Format("2006-01-02")
	profile := w.store.Profile()

	for _, appt := range w.store.Appointments() {
		if appt.Date != today || appt.Status != domain.AppointmentStatusAgendada {
			continue
		}
		w.mu.Lock()
		already := w.sent[appt.ID]
		if !already {
			w.sent[appt.ID] = true
		}
		w.mu.Unlock()
		if already {
			continue
		}

		// Live lookup: the patient may have been renamed or deleted
		// since booking.
		p, found := w.store.Patient(appt.PatientID)
		if !found || p.Email == "" {
			slog.Warn("reminder skipped, no reachable patient",
				"appointment", appt.ID, "patient", appt.PatientID)
			continue
		}

		msg := email.BuildAppointmentReminderEmail(email.ReminderData{
			PatientName:     p.Name,
			Email:           p.Email,
			Date:            appt.Date,
			Time:            appt.Time,
			AppointmentType: appt.Type,
			ClinicianName:   profile.Name,
		})

		if !w.mailer.Enabled() {
			slog.Info("reminder (email disabled)",
				"patient", p.Name, "date", appt.Date, "time", appt.Time)
			continue
		}
		if err := w.mailer.Send(ctx, msg); err != nil {
			slog.Error("reminder send failed", "appointment", appt.ID, "err", err)
		}
	}
}
