package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mairapenna/nutriplan_backend/internal/storage"
	"github.com/mairapenna/nutriplan_backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	backend, err := storage.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return New(store.New(context.Background(), backend))
}

func TestAnthropometryXLSX(t *testing.T) {
	svc := newTestService(t)

	b, name, err := svc.AnthropometryXLSX(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "antropometria_1.xlsx", name)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Antropometria")
	require.NoError(t, err)

	// Header plus the three seed measurements.
	require.Len(t, rows, 4)
	assert.Equal(t, "2026-08-10", rows[1][0])
}

func TestAnthropometryXLSXUnknownPatient(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.AnthropometryXLSX(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
