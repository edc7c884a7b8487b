package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/gen/ent"
	entposting "github.com/campushire/placement-portal/gen/ent/posting"
	"github.com/campushire/placement-portal/internal/jdparser"
)

// CreatePostingRequest carries everything needed to upsert a posting from
// a parsed payload.
type CreatePostingRequest struct {
	ProfileID uuid.UUID
	JobID     uuid.UUID
	Payload   jdparser.JobPostingPayload
}

type PostingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Posting, error)
	ListPostings(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*ent.Posting, error)
	UpsertFromPayload(ctx context.Context, req *CreatePostingRequest) (*ent.Posting, error)
	CloseExpired(ctx context.Context, asOf time.Time) (int, error)
}

type postingRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPostingRepository(entc *ent.Client, logger *slog.Logger) PostingRepository {
	return &postingRepo{ent: entc, logger: logger}
}

func (r *postingRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Posting, error) {
	return r.ent.Posting.Get(ctx, id)
}

func (r *postingRepo) ListPostings(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*ent.Posting, error) {
	q := r.ent.Posting.Query().
		Where(entposting.ProfileID(profileID)).
		Order(entposting.ByCreatedAt())
	if from != nil {
		q = q.Where(entposting.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entposting.CreatedAtLTE(*to))
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list postings", "profile_id", profileID, "error", err)
		return nil, err
	}
	return rows, nil
}

// UpsertFromPayload updates the profile's posting with the same title and
// company if one exists, creating it otherwise.
func (r *postingRepo) UpsertFromPayload(ctx context.Context, req *CreatePostingRequest) (*ent.Posting, error) {
	p := req.Payload
	deadline, err := time.Parse(constants.DeadlineLayout, p.ApplicationDeadline)
	if err != nil {
		return nil, fmt.Errorf("parse application deadline: %w", err)
	}

	existing, err := r.ent.Posting.Query().
		Where(
			entposting.ProfileID(req.ProfileID),
			entposting.Title(p.Title),
			entposting.CompanyName(p.CompanyName),
		).
		Only(ctx)
	if err == nil {
		row, uerr := existing.Update().
			SetNillableLocation(nilIfEmpty(p.Location)).
			SetNillableSalaryRange(nilIfEmpty(p.SalaryRange)).
			SetNillableExperienceRequired(nilIfEmpty(p.ExperienceRequired)).
			SetSkillsRequired(p.SkillsRequired).
			SetDescription(p.Description).
			SetRequirements(p.Requirements).
			SetBenefits(p.Benefits).
			SetJobType(p.JobType).
			SetWorkMode(p.WorkMode).
			SetApplicationDeadline(deadline).
			Save(ctx)
		if uerr != nil {
			r.logger.Error("failed to update posting", "posting_id", existing.ID, "error", uerr)
			return nil, uerr
		}
		r.logger.Info("posting updated", "posting_id", row.ID, "job_id", req.JobID)
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	row, err := r.ent.Posting.Create().
		SetProfileID(req.ProfileID).
		SetTitle(p.Title).
		SetCompanyName(p.CompanyName).
		SetNillableLocation(nilIfEmpty(p.Location)).
		SetNillableSalaryRange(nilIfEmpty(p.SalaryRange)).
		SetNillableExperienceRequired(nilIfEmpty(p.ExperienceRequired)).
		SetSkillsRequired(p.SkillsRequired).
		SetDescription(p.Description).
		SetRequirements(p.Requirements).
		SetBenefits(p.Benefits).
		SetJobType(p.JobType).
		SetWorkMode(p.WorkMode).
		SetApplicationDeadline(deadline).
		SetStatus(string(constants.PostingOpen)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create posting", "profile_id", req.ProfileID, "title", p.Title, "error", err)
		return nil, err
	}
	r.logger.Info("posting created", "posting_id", row.ID, "job_id", req.JobID, "title", p.Title)
	return row, nil
}

// CloseExpired marks OPEN postings whose application deadline has passed
// as CLOSED. Idempotent; returns the number of rows updated.
func (r *postingRepo) CloseExpired(ctx context.Context, asOf time.Time) (int, error) {
	n, err := r.ent.Posting.Update().
		Where(
			entposting.StatusEQ(string(constants.PostingOpen)),
			entposting.ApplicationDeadlineLT(asOf),
		).
		SetStatus(string(constants.PostingClosed)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to close expired postings", "error", err)
		return 0, err
	}
	if n > 0 {
		r.logger.Info("closed expired postings", "count", n, "as_of", asOf.Format(constants.DeadlineLayout))
	}
	return n, nil
}
