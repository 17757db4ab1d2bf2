package auth

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mairapenna/nutriplan_backend/config"
	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	backend, err := storage.NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}
	st := store.New(context.Background(), backend)
	return New(st, rdb, config.AuthConfig{AdminPassword: "s3cret"})
}

func TestAdminLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.LoginAdmin(ctx, "wrong"); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want %v", err, ErrInvalidCredentials)
	}

	token, err := svc.LoginAdmin(ctx, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	sess, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sess.Role != RoleAdmin || sess.PatientID != "" {
		t.Errorf("session = %+v", sess)
	}
}

func TestPatientLoginCaseInsensitive(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, p, err := svc.LoginPatient(ctx, "  ANA.JU@email.com ")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if p.ID != "1" {
		t.Errorf("patient = %q, want 1", p.ID)
	}

	sess, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sess.Role != RolePatient || sess.PatientID != "1" {
		t.Errorf("session = %+v", sess)
	}
}

func TestPatientLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)
	if _, _, err := svc.LoginPatient(context.Background(), "nobody@email.com"); err != ErrInvalidCredentials {
		t.Errorf("err = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.LoginAdmin(ctx, "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Resolve(ctx, token); err != ErrSessionNotFound {
		t.Errorf("err = %v, want %v", err, ErrSessionNotFound)
	}
}

func TestResolveUnknownToken(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Resolve(context.Background(), "bogus"); err != ErrSessionNotFound {
		t.Errorf("err = %v, want %v", err, ErrSessionNotFound)
	}
}
