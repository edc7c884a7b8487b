package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/gen/ent"
	v1 "github.com/campushire/placement-portal/gen/proto/placement/v1"
	"github.com/campushire/placement-portal/internal/common"
	"github.com/campushire/placement-portal/internal/repository"
)

type PostingsService struct {
	v1.UnimplementedPostingsServiceServer
	postings repository.PostingRepository
	logger   *slog.Logger
}

func NewPostingsService(postings repository.PostingRepository, logger *slog.Logger) *PostingsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostingsService{postings: postings, logger: logger}
}

func (s *PostingsService) GetPosting(ctx context.Context, req *v1.GetPostingRequest) (*v1.GetPostingResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "id must be a UUID")
	}

	row, err := s.postings.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("posting not found")
		}
		s.logger.Warn("get posting failed", "posting_id", id, "error", err)
		return nil, status.Error(codes.Internal, "get posting failed")
	}
	return &v1.GetPostingResponse{Posting: toPBPosting(row)}, nil
}

func (s *PostingsService) ListPostings(ctx context.Context, req *v1.ListPostingsRequest) (*v1.ListPostingsResponse, error) {
	v := common.NewValidator().
		Field("profile_id", req.GetProfileId(), common.Required, common.UUID).
		Field("from_date", req.GetFromDate(), common.DateYYYYMMDD).
		Field("to_date", req.GetToDate(), common.DateYYYYMMDD)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	profileID, _ := uuid.Parse(req.GetProfileId())

	from, to := parseDateWindow(req.GetFromDate(), req.GetToDate())
	rows, err := s.postings.ListPostings(ctx, profileID, from, to)
	if err != nil {
		s.logger.Warn("list postings failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "list postings failed")
	}

	out := make([]*v1.Posting, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPBPosting(p))
	}
	return &v1.ListPostingsResponse{Postings: out}, nil
}

// parseDateWindow turns optional YYYY-MM-DD strings into a time window.
// Inputs are assumed pre-validated. Only-from windows extend to today.
func parseDateWindow(fromStr, toStr string) (*time.Time, *time.Time) {
	var from, to *time.Time
	if fd := strings.TrimSpace(fromStr); fd != "" {
		t, _ := time.Parse(constants.DeadlineLayout, fd)
		from = &t
	}
	if td := strings.TrimSpace(toStr); td != "" {
		t, _ := time.Parse(constants.DeadlineLayout, td)
		to = &t
	}
	if from != nil && to == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		to = &t
	}
	return from, to
}

func toPBPosting(p *ent.Posting) *v1.Posting {
	pb := &v1.Posting{
		Id:                  p.ID.String(),
		ProfileId:           p.ProfileID.String(),
		Title:               p.Title,
		CompanyName:         p.CompanyName,
		SkillsRequired:      p.SkillsRequired,
		Requirements:        p.Requirements,
		Benefits:            p.Benefits,
		JobType:             p.JobType,
		WorkMode:            p.WorkMode,
		ApplicationDeadline: p.ApplicationDeadline.Format(constants.DeadlineLayout),
		Status:              p.Status,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339Nano),
	}
	if p.Location != nil {
		pb.Location = *p.Location
	}
	if p.SalaryRange != nil {
		pb.SalaryRange = *p.SalaryRange
	}
	if p.ExperienceRequired != nil {
		pb.ExperienceRequired = *p.ExperienceRequired
	}
	return pb
}
