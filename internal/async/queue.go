package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit of background work: one queued
// parse_job to push through the pipeline.
type Job struct {
	JobID       uuid.UUID
	UploadID    uuid.UUID
	ProfileID   uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
