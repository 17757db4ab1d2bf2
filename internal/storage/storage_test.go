package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func backends(t *testing.T) map[string]Storage {
	t.Helper()

	fileBackend, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("file storage: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return map[string]Storage{
		"file":  fileBackend,
		"redis": NewRedisStorage(rdb),
	}
}

func TestRoundTrip(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := backend.Load(ctx, "mp_patients"); err != ErrNotFound {
				t.Errorf("load missing: err = %v, want %v", err, ErrNotFound)
			}

			want := []byte(`[{"id":"1"}]`)
			if err := backend.Save(ctx, "mp_patients", want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := backend.Load(ctx, "mp_patients")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if string(got) != string(want) {
				t.Errorf("load = %s, want %s", got, want)
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := backend.Save(ctx, "mp_profile", []byte(`{"name":"a"}`)); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := backend.Save(ctx, "mp_profile", []byte(`{"name":"b"}`)); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := backend.Load(ctx, "mp_profile")
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if string(got) != `{"name":"b"}` {
				t.Errorf("load = %s, want last write", got)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if err := backend.Save(ctx, "mp_notifications", []byte(`{}`)); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := backend.Delete(ctx, "mp_notifications"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := backend.Load(ctx, "mp_notifications"); err != ErrNotFound {
				t.Errorf("load after delete: err = %v, want %v", err, ErrNotFound)
			}

			// Deleting an absent key is not an error.
			if err := backend.Delete(ctx, "mp_notifications"); err != nil {
				t.Errorf("delete missing: %v", err)
			}
		})
	}
}
