package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/gen/ent"
	"github.com/campushire/placement-portal/gen/ent/profile"
)

type Profile struct {
	Name        string
	CompanyName string
	Email       string
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error)
	CreateProfile(ctx context.Context, p *Profile) (*ent.Profile, error)
	ListProfiles(ctx context.Context) ([]*ent.Profile, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Profile, error) {
	return r.client.Profile.
		Query().
		Where(profile.ID(id)).
		Only(ctx)
}

func (r *profileRepository) CreateProfile(ctx context.Context, p *Profile) (*ent.Profile, error) {
	row, err := r.client.Profile.Create().
		SetName(p.Name).
		SetCompanyName(p.CompanyName).
		SetNillableEmail(nilIfEmpty(p.Email)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "name", p.Name, "company", p.CompanyName, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *profileRepository) ListProfiles(ctx context.Context) ([]*ent.Profile, error) {
	rows, err := r.client.Profile.Query().Order(profile.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list profiles", "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *profileRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.client.Profile.Query().Where(profile.ID(id)).Exist(ctx)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
