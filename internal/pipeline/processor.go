package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor coordinates text extraction then field parse/persist for one
// queued job.
type Processor struct {
	Logger  *slog.Logger
	Extract *ExtractStage
	Parse   *ParseStage
}

func NewProcessor(logger *slog.Logger, extract *ExtractStage, parse *ParseStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Extract: extract, Parse: parse}
}

// ProcessJob runs extraction for a queued parse_job, then runs the parse
// stage on the extracted record. Returns the posting ID when one was
// created or updated, uuid.Nil otherwise.
func (p *Processor) ProcessJob(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, res, err := p.Extract.Run(ctx, jobID)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "job_id", jobID, "err", err)
		return uuid.Nil, err
	}
	p.Logger.Info("pipeline.extract.ok",
		"job_id", jobID,
		"upload_id", job.UploadID,
		"text_bytes", len(res.OriginalText),
	)

	postingID, err := p.Parse.Run(ctx, jobID, job.ProfileID, *res.Data)
	if err != nil {
		p.Logger.Error("pipeline.parse.failed", "job_id", jobID, "err", err)
		return uuid.Nil, err
	}
	p.Logger.Info("pipeline.parse.ok", "job_id", jobID, "posting_id", postingID)
	return postingID, nil
}
