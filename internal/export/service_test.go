package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/campushire/placement-portal/gen/ent"
	"github.com/campushire/placement-portal/internal/repository"
)

type stubPostingRepo struct {
	rows []*ent.Posting
}

func (s *stubPostingRepo) GetByID(context.Context, uuid.UUID) (*ent.Posting, error) {
	return nil, nil
}

func (s *stubPostingRepo) ListPostings(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*ent.Posting, error) {
	return s.rows, nil
}

func (s *stubPostingRepo) UpsertFromPayload(context.Context, *repository.CreatePostingRequest) (*ent.Posting, error) {
	return nil, nil
}

func (s *stubPostingRepo) CloseExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

func TestExportPostingsXLSX(t *testing.T) {
	location := "Bengaluru"
	deadline := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	repo := &stubPostingRepo{rows: []*ent.Posting{{
		ID:                  uuid.New(),
		ProfileID:           uuid.New(),
		Title:               "Senior Software Engineer",
		CompanyName:         "Acme Systems",
		Location:            &location,
		SkillsRequired:      []string{"Golang", "SQL"},
		JobType:             "Full-time",
		WorkMode:            "Hybrid",
		ApplicationDeadline: deadline,
		Status:              "OPEN",
		CreatedAt:           time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}}}

	svc := NewService(repo, nil)
	data, err := svc.ExportPostingsXLSX(context.Background(), uuid.New(), nil, nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Postings" {
		t.Fatalf("sheets = %v, want exactly [Postings]", sheets)
	}

	title, err := f.GetCellValue("Postings", "A2")
	if err != nil {
		t.Fatalf("read cell: %v", err)
	}
	if title != "Senior Software Engineer" {
		t.Errorf("A2 = %q, want %q", title, "Senior Software Engineer")
	}
	deadlineCell, _ := f.GetCellValue("Postings", "I2")
	if deadlineCell != "2026-03-31" {
		t.Errorf("I2 = %q, want %q", deadlineCell, "2026-03-31")
	}
}
