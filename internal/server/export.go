package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	v1 "github.com/campushire/placement-portal/gen/proto/placement/v1"
	"github.com/campushire/placement-portal/internal/common"
	"github.com/campushire/placement-portal/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

// ExportPostings returns an XLSX workbook for the profile's postings.
// Date semantics match ListPostings:
// - only from -> from..today (inclusive)
// - only to   -> beginning..to (inclusive)
// - none      -> all.
func (s *ExportService) ExportPostings(ctx context.Context, req *v1.ExportPostingsRequest) (*v1.ExportPostingsResponse, error) {
	v := common.NewValidator().
		Field("profile_id", req.GetProfileId(), common.Required, common.UUID).
		Field("from_date", req.GetFromDate(), common.DateYYYYMMDD).
		Field("to_date", req.GetToDate(), common.DateYYYYMMDD)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}
	profileID, _ := uuid.Parse(strings.TrimSpace(req.GetProfileId()))

	from, to := parseDateWindow(req.GetFromDate(), req.GetToDate())
	xlsx, err := s.svc.ExportPostingsXLSX(ctx, profileID, from, to)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "profile_id", profileID, "err", err)
		return nil, common.InternalError("export failed")
	}

	return &v1.ExportPostingsResponse{Xlsx: xlsx}, nil
}
