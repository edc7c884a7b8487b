package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/campushire/placement-portal/gen/proto/placement/v1"
	"github.com/campushire/placement-portal/gen/ent"
	"github.com/campushire/placement-portal/internal/common"
	"github.com/campushire/placement-portal/internal/repository"
)

type ProfilesService struct {
	v1.UnimplementedProfilesServiceServer
	profiles repository.ProfileRepository
	logger   *slog.Logger
}

func NewProfilesService(profiles repository.ProfileRepository, logger *slog.Logger) *ProfilesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfilesService{profiles: profiles, logger: logger}
}

func (s *ProfilesService) CreateProfile(ctx context.Context, req *v1.CreateProfileRequest) (*v1.CreateProfileResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required).
		Field("company_name", req.GetCompanyName(), common.Required, common.MinLength(2))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	p, err := s.profiles.CreateProfile(ctx, &repository.Profile{
		Name:        req.GetName(),
		CompanyName: req.GetCompanyName(),
		Email:       req.GetEmail(),
	})
	if err != nil {
		s.logger.Warn("create profile failed", "error", err)
		return nil, status.Error(codes.Internal, "create profile failed")
	}

	return &v1.CreateProfileResponse{Profile: toPBProfile(p)}, nil
}

func (s *ProfilesService) ListProfiles(ctx context.Context, _ *v1.ListProfilesRequest) (*v1.ListProfilesResponse, error) {
	rows, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		s.logger.Warn("list profiles failed", "error", err)
		return nil, status.Error(codes.Internal, "list profiles failed")
	}

	out := make([]*v1.Profile, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPBProfile(p))
	}
	return &v1.ListProfilesResponse{Profiles: out}, nil
}

func toPBProfile(p *ent.Profile) *v1.Profile {
	pb := &v1.Profile{
		Id:          p.ID.String(),
		Name:        p.Name,
		CompanyName: p.CompanyName,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339Nano),
	}
	if p.Email != nil {
		pb.Email = *p.Email
	}
	return pb
}
