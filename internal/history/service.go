package history

import (
	"context"

	"go.uber.org/zap"
)

type Service struct {
	records *Repository

	logger *zap.Logger
}

func NewService(records *Repository, logger *zap.Logger) *Service {
	return &Service{
		records: records,
		logger:  logger,
	}
}

// Append records the outcome of one cycle. Failures are logged and swallowed:
// losing an audit entry must never interrupt the watch loop.
func (s *Service) Append(ctx context.Context, draft RecordDraft) {
	record, err := s.records.Create(ctx, &draft)
	if err != nil {
		s.logger.Error("failed to record cycle", zap.Error(err))
		return
	}

	s.logger.Debug("cycle recorded",
		zap.String("id", record.ID.String()),
		zap.String("outcome", string(record.Outcome)))
}

// Recent returns up to limit records, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Record, error) {
	records, err := s.records.List(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list cycle records", zap.Error(err))
		return nil, err
	}

	return records, nil
}
