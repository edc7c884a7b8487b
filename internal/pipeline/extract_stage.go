package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/gen/ent"
	"github.com/campushire/placement-portal/internal/jdparser"
	"github.com/campushire/placement-portal/internal/repository"
)

// ExtractStage is stage 1: upload -> parse_job -> extracted text.
type ExtractStage struct {
	UploadsRepo repository.UploadRepository
	JobsRepo    repository.ParseJobRepository
	Parser      *jdparser.Parser
	Logger      *slog.Logger
}

func NewExtractStage(uploads repository.UploadRepository, jobs repository.ParseJobRepository, parser *jdparser.Parser, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{UploadsRepo: uploads, JobsRepo: jobs, Parser: parser, Logger: logger}
}

// Run picks up a queued parse_job, runs the loader/text-extractor, and
// persists the extracted text. Returns the job row and the parse result;
// field extraction has already happened (it is pure), but stage 2 owns
// validation and posting persistence.
func (s *ExtractStage) Run(ctx context.Context, jobID uuid.UUID) (*ent.ParseJob, jdparser.ParseResult, error) {
	job, err := s.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, jdparser.ParseResult{}, fmt.Errorf("get job: %w", err)
	}

	row, err := s.UploadsRepo.GetByID(ctx, job.UploadID)
	if err != nil {
		_ = s.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job, jdparser.ParseResult{}, fmt.Errorf("get upload: %w", err)
	}

	if format := constants.MapContentTypeToFormat(row.ContentType); format == "" {
		ferr := fmt.Errorf("unsupported content type: %s", row.ContentType)
		_ = s.JobsRepo.FinishFailure(ctx, job.ID, ferr.Error())
		return job, jdparser.ParseResult{}, ferr
	}

	if err := s.JobsRepo.Start(ctx, job.ID); err != nil {
		return job, jdparser.ParseResult{}, err
	}

	data, err := os.ReadFile(row.SourcePath)
	if err != nil {
		_ = s.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job, jdparser.ParseResult{}, fmt.Errorf("read upload: %w", err)
	}

	res := s.Parser.Parse(ctx, jdparser.RawDocument{Content: data, ContentType: row.ContentType})
	if !res.Success {
		_ = s.JobsRepo.FinishFailure(ctx, job.ID, res.Error)
		return job, res, fmt.Errorf("parse upload: %s", res.Error)
	}

	if err := s.JobsRepo.FinishExtract(ctx, job.ID, res.OriginalText); err != nil {
		return job, res, err
	}
	return job, res, nil
}
