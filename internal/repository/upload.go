package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/campushire/placement-portal/gen/ent"
	entupload "github.com/campushire/placement-portal/gen/ent/upload"
)

type UploadRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Upload, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.Upload, error)
	Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.Upload, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.Upload, bool, error)
}

type uploadRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewUploadRepository(entc *ent.Client, logger *slog.Logger) UploadRepository {
	return &uploadRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *uploadRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Upload, error) {
	return r.ent.Upload.Get(ctx, id)
}

func (r *uploadRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.Upload, error) {
	row, err := r.ent.Upload.Query().
		Where(
			entupload.ProfileID(profileID),
			entupload.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *uploadRepo) Create(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.Upload, error) {
	row, err := r.ent.Upload.Create().
		SetProfileID(profileID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetContentType(contentType).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create upload", "profile_id", profileID, "source_path", sourcePath, "error", err)
		return nil, err
	}
	return row, nil
}

// UpsertByHash reuses an existing row with the same content hash for the
// profile (dedup), creating one otherwise. The bool reports dedup.
func (r *uploadRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, sourcePath, filename, ext, contentType string, size int, hash []byte, uploadedAt time.Time) (*ent.Upload, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, sourcePath, filename, ext, contentType, size, hash, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}
