package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/campushire/placement-portal/constants"
	v1 "github.com/campushire/placement-portal/gen/proto/placement/v1"
	"github.com/campushire/placement-portal/internal/async"
	"github.com/campushire/placement-portal/internal/ingest"
	"github.com/campushire/placement-portal/internal/repository"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor    ingest.Ingestor
	queue       async.Queue
	profileRepo repository.ProfileRepository
	jobsRepo    repository.ParseJobRepository
	logger      *slog.Logger
}

func NewIngestionService(ing ingest.Ingestor, queue async.Queue, profiles repository.ProfileRepository, jobs repository.ParseJobRepository, logger *slog.Logger) *IngestionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionService{
		ingestor:    ing,
		queue:       queue,
		profileRepo: profiles,
		jobsRepo:    jobs,
		logger:      logger,
	}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}

	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "profile_id", profileID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, profileID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "profile_id", profileID, "upload_id", r.UploadID, "deduplicated", r.Deduplicated)

	resp := toPBIngestResult(r)
	s.enqueue(ctx, r, profileID, resp)
	return resp, nil
}

func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	profileID, err := s.requireProfile(ctx, req.GetProfileId())
	if err != nil {
		return nil, err
	}

	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "profile_id", profileID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "profile_id", profileID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, profileID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"profile_id", profileID,
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated,
		"failed", stats.Failed,
	)

	out := &v1.IngestDirectoryResponse{
		Scanned:      int32(stats.Scanned),
		Matched:      int32(stats.Matched),
		Succeeded:    int32(stats.Succeeded),
		Deduplicated: int32(stats.Deduplicated),
		Failed:       int32(stats.Failed),
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}
	for _, r := range results {
		item := toPBIngestResult(r)
		if r.Err == "" {
			s.enqueue(ctx, r, profileID, item)
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *IngestionService) requireProfile(ctx context.Context, raw string) (uuid.UUID, error) {
	pid := strings.TrimSpace(raw)
	if pid == "" {
		s.logger.Error("ingest request missing profile_id")
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id is required")
	}
	profileID, err := uuid.Parse(pid)
	if err != nil {
		s.logger.Error("invalid profile_id format for ingest", "profile_id", pid, "error", err)
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile_id must be a UUID")
	}
	if exists, _ := s.profileRepo.Exists(ctx, profileID); !exists {
		s.logger.Error("profile not found for ingest", "profile_id", profileID)
		return uuid.Nil, status.Error(codes.InvalidArgument, "profile not found")
	}
	return profileID, nil
}

// enqueue records a QUEUED parse_job for the upload, then hands it to the
// worker pool. The DB row makes the backlog visible even while the job
// waits in the channel.
func (s *IngestionService) enqueue(ctx context.Context, r ingest.IngestionResult, profileID uuid.UUID, item *v1.IngestResponse) {
	uploadID, err := uuid.Parse(r.UploadID)
	if err != nil {
		return
	}

	format := constants.MapContentTypeToFormat(r.ContentType)
	if format == "" {
		item.Error = fmt.Sprintf("unsupported content type: %s", r.ContentType)
		return
	}

	job, err := s.jobsRepo.Enqueue(ctx, uploadID, profileID, string(format))
	if err != nil {
		s.logger.Error("job.enqueue.failed", "upload_id", r.UploadID, "err", err)
		item.Error = err.Error()
		return
	}

	if err := s.queue.Enqueue(ctx, async.Job{
		JobID:       job.ID,
		UploadID:    uploadID,
		ProfileID:   profileID,
		SubmittedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Error("queue.enqueue.failed", "job_id", job.ID, "err", err)
		item.Error = err.Error()
	}
}

func toPBIngestResult(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		UploadId:       r.UploadID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		ContentType:    r.ContentType,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
