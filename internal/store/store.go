// Package store owns the canonical collections. Screens and services hold
// snapshots or drafts; every mutation passes through here, replaces the
// relevant slice wholesale and writes the full collection back through the
// storage port (write-through, last-write-wins).
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/pkg/constants"
)

type Store struct {
	mu sync.RWMutex

	patients      []domain.Patient
	appointments  []domain.Appointment
	profile       domain.Profile
	notifications domain.NotificationPrefs

	backend storage.Storage

	// now is swappable in tests; CreatePatient derives ids from it.
	now func() time.Time
}

// New loads the four persisted keys. A missing or unreadable blob falls
// back to seed/default values; load never fails the application.
func New(ctx context.Context, backend storage.Storage) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
	}
	s.patients = loadOrSeed(ctx, backend, constants.KeyPatients, SeedPatients)
	s.appointments = loadOrSeed(ctx, backend, constants.KeyAppointments, SeedAppointments)
	s.profile = loadOrSeed(ctx, backend, constants.KeyProfile, DefaultProfile)
	s.notifications = loadOrSeed(ctx, backend, constants.KeyNotifications, DefaultNotifications)
	return s
}

func loadOrSeed[T any](ctx context.Context, backend storage.Storage, key string, seed func() T) T {
	b, err := backend.Load(ctx, key)
	if err != nil {
		if err != storage.ErrNotFound {
			slog.Warn("store: load failed, using defaults", "key", key, "err", err)
		}
		return seed()
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		slog.Warn("store: corrupt blob, using defaults", "key", key, "err", err)
		return seed()
	}
	return v
}

func (s *Store) persist(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		slog.Error("store: marshal failed", "key", key, "err", err)
		return
	}
	if err := s.backend.Save(ctx, key, b); err != nil {
		slog.Error("store: save failed", "key", key, "err", err)
	}
}

// ---------------------------------------------------------------------------
// Snapshots
// ---------------------------------------------------------------------------

// Patients returns a deep copy of the canonical collection. Services edit
// the nested slices of these snapshots before writing back, so a shallow
// copy would let those edits bleed into canonical state.
func (s *Store) Patients() []domain.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Patient, len(s.patients))
	for i, p := range s.patients {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

// Patient returns a deep copy of the record for id.
func (s *Store) Patient(id string) (domain.Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.Patient{}, false
}

func (s *Store) Profile() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) Notifications() domain.NotificationPrefs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// CreatePatient assigns a current-time-derived id, defaults the visit dates
// and log collections to empty, and prepends the record so the newest
// patient lists first.
func (s *Store) CreatePatient(ctx context.Context, partial domain.Patient) domain.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := partial.Clone()
	p.ID = strconv.FormatInt(s.now().UnixMilli(), 10)
	p.LastVisit = ""
	p.NextVisit = ""
	p.SymptomsLog = []domain.DailyLog{}
	p.Anthropometry = []domain.AnthropometryRecord{}

	next := make([]domain.Patient, 0, len(s.patients)+1)
	next = append(next, p)
	next = append(next, s.patients...)
	s.patients = next

	s.persist(ctx, constants.KeyPatients, s.patients)
	return p
}

// UpdatePatient replaces the entry with a matching id. Unknown ids are a
// silent no-op, mirroring the client behavior.
func (s *Store) UpdatePatient(ctx context.Context, patient domain.Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Patient, len(s.patients))
	found := false
	for i, p := range s.patients {
		if p.ID == patient.ID {
			// Clone so the caller's struct cannot alias canonical state.
			next[i] = patient.Clone()
			found = true
		} else {
			next[i] = p
		}
	}
	if !found {
		return
	}
	s.patients = next
	s.persist(ctx, constants.KeyPatients, s.patients)
}

func (s *Store) DeletePatient(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Patient, 0, len(s.patients))
	found := false
	for _, p := range s.patients {
		if p.ID == id {
			found = true
			continue
		}
		next = append(next, p)
	}
	if !found {
		return false
	}
	s.patients = next
	s.persist(ctx, constants.KeyPatients, s.patients)
	return true
}

// AddAppointment appends without conflict checking; double-booking is
// allowed and not detected.
func (s *Store) AddAppointment(ctx context.Context, appt domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Appointment, 0, len(s.appointments)+1)
	next = append(next, s.appointments...)
	next = append(next, appt)
	s.appointments = next

	s.persist(ctx, constants.KeyAppointments, s.appointments)
}

func (s *Store) SaveProfile(ctx context.Context, p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.persist(ctx, constants.KeyProfile, p)
}

func (s *Store) SaveNotifications(ctx context.Context, n domain.NotificationPrefs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = n
	s.persist(ctx, constants.KeyNotifications, n)
}

// ResetAll clears every persisted key and reinstalls the built-in seed data
// and default settings.
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{
		constants.KeyPatients,
		constants.KeyAppointments,
		constants.KeyProfile,
		constants.KeyNotifications,
	} {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("reset %q: %w", key, err)
		}
	}

	s.patients = SeedPatients()
	s.appointments = SeedAppointments()
	s.profile = DefaultProfile()
	s.notifications = DefaultNotifications()

	s.persist(ctx, constants.KeyPatients, s.patients)
	s.persist(ctx, constants.KeyAppointments, s.appointments)
	s.persist(ctx, constants.KeyProfile, s.profile)
	s.persist(ctx, constants.KeyNotifications, s.notifications)
	return nil
}
