package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-api/internal/domain/analytics"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type memoryCounters struct {
	values map[string]int64
	err    error
}

func (m *memoryCounters) Increment(_ context.Context, key string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.values[key]++
	return m.values[key], nil
}

func TestRecordEventIncrementsCounter(t *testing.T) {
	counters := &memoryCounters{values: map[string]int64{}}
	uc := NewRecordEventUseCase(counters, logger.NewNop())

	e := analytics.NewEvent(analytics.EventPortfolioViewed, "profile", "")
	n, err := uc.Execute(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = uc.Execute(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, int64(2), counters.values["analytics:portfolio.viewed:profile"])
}

func TestRecordEventRejectsIncompleteEvent(t *testing.T) {
	uc := NewRecordEventUseCase(&memoryCounters{values: map[string]int64{}}, logger.NewNop())
	_, err := uc.Execute(context.Background(), analytics.Event{Type: analytics.EventAIChat})
	assert.Error(t, err)
}

func TestRecordEventWrapsCounterError(t *testing.T) {
	boom := errors.New("redis down")
	uc := NewRecordEventUseCase(&memoryCounters{err: boom}, logger.NewNop())
	_, err := uc.Execute(context.Background(), analytics.NewEvent(analytics.EventAIChat, "chat", ""))
	assert.ErrorIs(t, err, boom)
}
