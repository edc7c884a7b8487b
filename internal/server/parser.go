package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/campushire/placement-portal/gen/proto/placement/v1"
	"github.com/campushire/placement-portal/internal/jdparser"
)

// ParserService exposes one-shot parsing over gRPC. It never touches
// storage, so it can be used to preview a document before ingesting it.
type ParserService struct {
	v1.UnimplementedParserServiceServer
	parser *jdparser.Parser
	logger *slog.Logger
}

func NewParserService(parser *jdparser.Parser, logger *slog.Logger) *ParserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ParserService{parser: parser, logger: logger}
}

func (s *ParserService) ParseJobDescription(ctx context.Context, req *v1.ParseJobDescriptionRequest) (*v1.ParseJobDescriptionResponse, error) {
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}
	if req.GetContentType() == "" {
		return nil, status.Error(codes.InvalidArgument, "content_type is required")
	}

	res := s.parser.Parse(ctx, jdparser.RawDocument{
		Content:     req.GetContent(),
		ContentType: req.GetContentType(),
	})

	resp := &v1.ParseJobDescriptionResponse{
		Success:      res.Success,
		OriginalText: res.OriginalText,
		Error:        res.Error,
	}
	if !res.Success {
		return resp, nil
	}

	resp.Record = toPBJobRecord(res.Data)

	vr := jdparser.Validate(*res.Data)
	resp.Valid = vr.IsValid
	resp.ValidationErrors = vr.Errors

	payload := jdparser.BuildPostingPayload(*res.Data, time.Now().UTC())
	if raw, err := json.Marshal(payload); err == nil {
		resp.PayloadJson = string(raw)
	}
	return resp, nil
}

func toPBJobRecord(r *jdparser.JobRecord) *v1.JobRecord {
	return &v1.JobRecord{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Salary:       r.Salary,
		Experience:   r.Experience,
		Skills:       r.Skills,
		Description:  r.Description,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
	}
}
