package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/gen/ent"
)

type ParseJobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error)
	Enqueue(ctx context.Context, uploadID, profileID uuid.UUID, format string) (*ent.ParseJob, error)
	Start(ctx context.Context, jobID uuid.UUID) error
	FinishExtract(ctx context.Context, jobID uuid.UUID, extractedText string) error
	FinishParse(ctx context.Context, jobID uuid.UUID, extractedJSON []byte, validationErrors []string, needsReview bool) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
	SetPostingID(ctx context.Context, jobID, postingID uuid.UUID) error
}

type parseJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseJobRepository(entc *ent.Client, log *slog.Logger) ParseJobRepository {
	return &parseJobRepo{ent: entc, log: log}
}

func (r *parseJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, error) {
	return r.ent.ParseJob.Get(ctx, jobID)
}

// Enqueue records a QUEUED job for an upload so the backlog is visible in
// the database before a worker picks it up.
func (r *parseJobRepo) Enqueue(ctx context.Context, uploadID, profileID uuid.UUID, format string) (*ent.ParseJob, error) {
	job, err := r.ent.ParseJob.
		Create().
		SetUploadID(uploadID).
		SetProfileID(profileID).
		SetFormat(format).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job enqueue failed", "upload_id", uploadID, "err", err)
		return nil, err
	}
	r.log.Info("parse_job queued", "job_id", job.ID, "upload_id", uploadID, "format", format)
	return job, nil
}

// Start marks a queued job RUNNING and stamps the actual start time.
func (r *parseJobRepo) Start(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetStartedAt(time.Now()).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job start failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job started", "job_id", jobID)
	return nil
}

func (r *parseJobRepo) FinishExtract(ctx context.Context, jobID uuid.UUID, extractedText string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetExtractedText(extractedText).
		SetStatus(string(constants.JobStatusTextOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(TEXT_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (TEXT_OK)", "job_id", jobID, "text_bytes", len(extractedText))
	return nil
}

func (r *parseJobRepo) FinishParse(ctx context.Context, jobID uuid.UUID, extractedJSON []byte, validationErrors []string, needsReview bool) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetExtractedJSON(extractedJSON).
		SetValidationErrors(validationErrors).
		SetNeedsReview(needsReview).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParsed)).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(PARSED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("parse_job finished (PARSED)", "job_id", jobID, "needs_review", needsReview)
	return nil
}

func (r *parseJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("parse_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("parse_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func (r *parseJobRepo) SetPostingID(ctx context.Context, jobID, postingID uuid.UUID) error {
	_, err := r.ent.ParseJob.
		UpdateOneID(jobID).
		SetPostingID(postingID).
		Save(ctx)
	if err != nil {
		r.log.Error("link job->posting failed", "job_id", jobID, "posting_id", postingID, "err", err)
	}
	return err
}
