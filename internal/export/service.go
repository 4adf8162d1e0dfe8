package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/retinalab/screening-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// review exports.
type Service struct {
	encounters repository.EncounterRepository
	logger     *slog.Logger
}

func NewService(encounters repository.EncounterRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{encounters: encounters, logger: logger}
}

// ExportEncountersXLSX returns an XLSX workbook (as bytes) listing every
// encounter joined with its mined findings.
func (s *Service) ExportEncountersXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	summaries, err := s.encounters.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("query encounters: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Encounters"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Capture Date",
		"Patient ID",
		"Patient Name",
		"Archive",
		"Files",
		"DR Result",
		"VCDR Right",
		"VCDR Left",
		"Glaucoma Result",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range summaries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.CaptureDate)
		write(2, e.PatientID)
		write(3, e.PatientName)
		write(4, e.ArchiveFilename)
		write(5, e.FileCount)
		if e.Retinopathy != nil {
			write(6, e.Retinopathy.Result)
		}
		if e.Glaucoma != nil {
			if e.Glaucoma.VCDRRight != nil {
				write(7, *e.Glaucoma.VCDRRight)
			}
			if e.Glaucoma.VCDRLeft != nil {
				write(8, *e.Glaucoma.VCDRLeft)
			}
			write(9, e.Glaucoma.Result)
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 14) // date
	_ = f.SetColWidth(sheet, "B", "C", 22) // patient
	_ = f.SetColWidth(sheet, "D", "D", 40) // archive
	_ = f.SetColWidth(sheet, "F", "F", 28) // DR result
	_ = f.SetColWidth(sheet, "I", "I", 40) // glaucoma result

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(summaries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
