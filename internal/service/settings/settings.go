// Package settings covers the profile card, notification toggles and the
// reset-all escape hatch.
package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

var ErrNameRequired = errors.New("profile name is required")

type Service interface {
	Profile(ctx context.Context) domain.Profile
	SaveProfile(ctx context.Context, p domain.Profile) error
	Notifications(ctx context.Context) domain.NotificationPrefs
	SaveNotifications(ctx context.Context, n domain.NotificationPrefs) error
	ResetAll(ctx context.Context) error
}

type settingsService struct {
	store *store.Store
}

func New(st *store.Store) Service {
	return &settingsService{store: st}
}

func (s *settingsService) Profile(_ context.Context) domain.Profile {
	return s.store.Profile()
}

func (s *settingsService) SaveProfile(ctx context.Context, p domain.Profile) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	s.store.SaveProfile(ctx, p)
	return nil
}

func (s *settingsService) Notifications(_ context.Context) domain.NotificationPrefs {
	return s.store.Notifications()
}

func (s *settingsService) SaveNotifications(ctx context.Context, n domain.NotificationPrefs) error {
	s.store.SaveNotifications(ctx, n)
	return nil
}

// ResetAll wipes every persisted collection and reinstalls seed data.
func (s *settingsService) ResetAll(ctx context.Context) error {
	return s.store.ResetAll(ctx)
}
