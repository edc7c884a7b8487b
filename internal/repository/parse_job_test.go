package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/gen/ent"
)

func openTestDB(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "portal.db")
	entc, _, err := Open(context.Background(), Config{DSN: dsn}, slog.Default())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = entc.Close() })
	if err := entc.Schema.Create(context.Background()); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return entc
}

func seedUpload(t *testing.T, entc *ent.Client) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	p, err := NewProfileRepository(entc, logger).CreateProfile(ctx, &Profile{
		Name:        "Campus Recruiter",
		CompanyName: "Acme Systems",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}

	u, err := NewUploadRepository(entc, logger).Create(ctx, p.ID,
		"/tmp/jd.txt", "jd.txt", "txt", "text/plain", 42, []byte{0x01, 0x02, 0x03}, time.Now().UTC())
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}
	return u.ID, p.ID
}

func TestParseJobQueuedThenRunning(t *testing.T) {
	entc := openTestDB(t)
	uploadID, profileID := seedUpload(t, entc)
	jobs := NewParseJobRepository(entc, slog.Default())
	ctx := context.Background()

	job, err := jobs.Enqueue(ctx, uploadID, profileID, string(constants.TEXT))
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if job.Status != string(constants.JobStatusQueued) {
		t.Fatalf("status after enqueue = %q, want %q", job.Status, constants.JobStatusQueued)
	}

	if err := jobs.Start(ctx, job.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	got, err := jobs.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != string(constants.JobStatusRunning) {
		t.Errorf("status after start = %q, want %q", got.Status, constants.JobStatusRunning)
	}
}

func TestParseJobFinishFailure(t *testing.T) {
	entc := openTestDB(t)
	uploadID, profileID := seedUpload(t, entc)
	jobs := NewParseJobRepository(entc, slog.Default())
	ctx := context.Background()

	job, err := jobs.Enqueue(ctx, uploadID, profileID, string(constants.TEXT))
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := jobs.FinishFailure(ctx, job.ID, "failed to extract text: bad bytes"); err != nil {
		t.Fatalf("finish failure: %v", err)
	}

	got, err := jobs.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != string(constants.JobStatusFailed) {
		t.Errorf("status = %q, want %q", got.Status, constants.JobStatusFailed)
	}
	if got.ErrorMessage == nil || *got.ErrorMessage == "" {
		t.Error("error message should be recorded")
	}
	if got.FinishedAt == nil {
		t.Error("finished_at should be set")
	}
}
