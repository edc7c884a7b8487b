package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/internal/jdparser"
	"github.com/campushire/placement-portal/internal/repository"
)

// ParseStage is stage 2: extracted record -> validated posting payload ->
// posting row.
type ParseStage struct {
	Logger       *slog.Logger
	JobsRepo     repository.ParseJobRepository
	ProfilesRepo repository.ProfileRepository
	PostingsRepo repository.PostingRepository

	schema map[string]any
	now    func() time.Time
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ParseJobRepository,
	profiles repository.ProfileRepository,
	postings repository.PostingRepository,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParseStage{
		Logger:       logger,
		JobsRepo:     jobs,
		ProfilesRepo: profiles,
		PostingsRepo: postings,
		schema:       jdparser.BuildPostingJSONSchema(),
		now:          time.Now,
	}
}

// Run validates the extracted record, formats the posting payload, and
// upserts a posting when validation passes. A record that fails validation
// still finishes PARSED, flagged needs_review with its errors stored; no
// posting row is written for it.
func (s *ParseStage) Run(ctx context.Context, jobID, profileID uuid.UUID, rec jdparser.JobRecord) (uuid.UUID, error) {
	if ok, err := s.ProfilesRepo.Exists(ctx, profileID); err != nil || !ok {
		ferr := fmt.Errorf("profile %s not found", profileID)
		_ = s.JobsRepo.FinishFailure(ctx, jobID, ferr.Error())
		return uuid.Nil, ferr
	}

	vres := jdparser.Validate(rec)
	payload := jdparser.BuildPostingPayload(rec, s.now())

	raw, err := json.Marshal(payload)
	if err != nil {
		_ = s.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return uuid.Nil, fmt.Errorf("marshal payload: %w", err)
	}
	if err := jdparser.ValidateJSONAgainstSchema(s.schema, raw); err != nil {
		_ = s.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return uuid.Nil, fmt.Errorf("payload schema: %w", err)
	}

	if !vres.IsValid {
		s.Logger.Warn("parsed record needs review", "job_id", jobID, "errors", vres.Errors)
		if err := s.JobsRepo.FinishParse(ctx, jobID, raw, vres.Errors, true); err != nil {
			return uuid.Nil, err
		}
		return uuid.Nil, nil
	}

	posting, err := s.PostingsRepo.UpsertFromPayload(ctx, &repository.CreatePostingRequest{
		ProfileID: profileID,
		JobID:     jobID,
		Payload:   payload,
	})
	if err != nil {
		_ = s.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return uuid.Nil, fmt.Errorf("upsert posting: %w", err)
	}
	if err := s.JobsRepo.SetPostingID(ctx, jobID, posting.ID); err != nil {
		_ = s.JobsRepo.FinishFailure(ctx, jobID, fmt.Sprintf("link job->posting: %v", err))
		return posting.ID, err
	}
	if err := s.JobsRepo.FinishParse(ctx, jobID, raw, nil, false); err != nil {
		return posting.ID, err
	}

	s.Logger.Info("parsed posting successfully",
		"job_id", jobID, "posting_id", posting.ID,
		"title", payload.Title, "company", payload.CompanyName,
		"skills", len(payload.SkillsRequired),
	)
	return posting.ID, nil
}
