package analytics

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/analytics"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RecordEventUseCase struct {
	counters analytics.CounterRepository
	logger   logger.Logger
}

func NewRecordEventUseCase(counters analytics.CounterRepository, log logger.Logger) *RecordEventUseCase {
	return &RecordEventUseCase{counters: counters, logger: log}
}

// Execute bumps the counter for the event's type and resource.
func (uc *RecordEventUseCase) Execute(ctx context.Context, e analytics.Event) (int64, error) {
	if e.Type == "" || e.Resource == "" {
		return 0, fmt.Errorf("record event %s: type and resource are required", e.ID)
	}

	key := e.CounterKey()
	n, err := uc.counters.Increment(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("record event %s: %w", e.ID, err)
	}

	uc.logger.Debug("Analytics event recorded", zap.String("key", key), zap.Int64("count", n))
	return n, nil
}
