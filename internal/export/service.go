package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/internal/repository"
)

// Service is a tiny façade over the posting repository that produces XLSX
// bytes for exports.
type Service struct {
	postingsRepo repository.PostingRepository
	logger       *slog.Logger
}

func NewService(postings repository.PostingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{postingsRepo: postings, logger: logger}
}

// ExportPostingsXLSX returns an XLSX workbook (as bytes) for the given
// profile and creation-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all postings for profile.
func (s *Service) ExportPostingsXLSX(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.postingsRepo.ListPostings(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query postings: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Postings"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop the workbook's default sheet so only "Postings" remains
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Title",
		"Company",
		"Location",
		"Salary Range",
		"Experience",
		"Skills",
		"Job Type",
		"Work Mode",
		"Deadline",
		"Status",
		"Created",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, p := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, p.Title)
		write(2, p.CompanyName)
		if p.Location != nil {
			write(3, *p.Location)
		}
		if p.SalaryRange != nil {
			write(4, *p.SalaryRange)
		}
		if p.ExperienceRequired != nil {
			write(5, *p.ExperienceRequired)
		}
		write(6, strings.Join(p.SkillsRequired, ", "))
		write(7, p.JobType)
		write(8, p.WorkMode)
		write(9, p.ApplicationDeadline.Format(constants.DeadlineLayout))
		write(10, p.Status)
		write(11, p.CreatedAt.Format(constants.DeadlineLayout))
		rowIdx++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported postings",
		"profile_id", profileID,
		"rows", len(rows),
		"bytes", buf.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
