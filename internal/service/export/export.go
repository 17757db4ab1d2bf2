// Package export renders patient evolution data as spreadsheets.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mairapenna/nutriplan_backend/internal/store"
)

var ErrPatientNotFound = errors.New("patient not found")

type Service interface {
	AnthropometryXLSX(ctx context.Context, patientID string) ([]byte, string, error)
}

type exportService struct {
	store *store.Store
}

func New(st *store.Store) Service {
	return &exportService{store: st}
}

// AnthropometryXLSX builds a one-sheet workbook with the patient's
// measurement history and returns the file bytes plus a suggested filename.
func (s *exportService) AnthropometryXLSX(_ context.Context, patientID string) ([]byte, string, error) {
	p, ok := s.store.Patient(patientID)
	if !ok {
		return nil, "", ErrPatientNotFound
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Antropometria"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("delete default sheet: %w", err)
	}

	headers := []any{"Data", "Peso (kg)", "Altura (cm)", "Cintura (cm)", "Quadril (cm)", "IMC"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, "", fmt.Errorf("header row: %w", err)
	}
	for i, r := range p.Anthropometry {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{r.Date, r.Weight, r.Height, r.Waist, r.Hip, r.BMI}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	name := fmt.Sprintf("antropometria_%s.xlsx", p.ID)
	return buf.Bytes(), name, nil
}
