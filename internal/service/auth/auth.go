// Package auth is the demo-grade access gate: one shared admin password
// and patient portal login by email. It is deliberately not a security
// boundary; there is no hashing and no account system.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

const (
	RoleAdmin   = "admin"
	RolePatient = "patient"

	sessionPrefix = "session:"
)

// Session is what a bearer token resolves to. PatientID is empty for the
// admin role.
type Session struct {
	Role      string `json:"role"`
	PatientID string `json:"patientId"`
}

type Service interface {
	LoginAdmin(ctx context.Context, password string) (string, error)
	LoginPatient(ctx context.Context, email string) (string, domain.Patient, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (Session, error)
}

type authService struct {
	store *store.Store
	rdb   *goredis.Client

	adminPassword string
	sessionTTL    time.Duration
}

func New(st *store.Store, rdb *goredis.Client, cfg config.AuthConfig) Service {
	password := cfg.AdminPassword
	if password == "" {
		password = "admin"
	}
	return &authService{
		store:         st,
		rdb:           rdb,
		adminPassword: password,
		sessionTTL:    time.Duration(cfg.SessionTTLMinutes) * time.Minute,
	}
}

func (s *authService) LoginAdmin(ctx context.Context, password string) (string, error) {
	if password != s.adminPassword {
		return "", ErrInvalidCredentials
	}
	return s.createSession(ctx, Session{Role: RoleAdmin})
}

// LoginPatient matches the email case-insensitively against the live
// patient collection, so a patient created a second ago can log in.
func (s *authService) LoginPatient(ctx context.Context, email string) (string, domain.Patient, error) {
	needle := strings.ToLower(strings.TrimSpace(email))
	if needle == "" {
		return "", domain.Patient{}, ErrInvalidCredentials
	}
	for _, p := range s.store.Patients() {
		if strings.ToLower(p.Email) == needle {
			token, err := s.createSession(ctx, Session{Role: RolePatient, PatientID: p.ID})
			if err != nil {
				return "", domain.Patient{}, err
			}
			return token, p, nil
		}
	}
	return "", domain.Patient{}, ErrInvalidCredentials
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *authService) Resolve(ctx context.Context, token string) (Session, error) {
	b, err := s.rdb.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	return sess, nil
}

func (s *authService) createSession(ctx context.Context, sess Session) (string, error) {
	token := uuid.NewString()
	b, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	// TTL 0 means the session never expires.
	if err := s.rdb.Set(ctx, sessionPrefix+token, b, s.sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}
