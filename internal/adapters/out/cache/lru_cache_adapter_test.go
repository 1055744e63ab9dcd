package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbondarchuk/vivid-availability/internal/adapters/out/cache"
	"github.com/dbondarchuk/vivid-availability/internal/config"
	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
	"github.com/dbondarchuk/vivid-availability/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(event string, fields out.LogFields) {}
func (nopLogger) Info(event string, fields out.LogFields)  {}
func (nopLogger) Warn(event string, fields out.LogFields)  {}
func (nopLogger) Error(event string, fields out.LogFields) {}

func (l nopLogger) WithModule(module string) out.LoggerPort   { return l }
func (l nopLogger) WithFields(f out.LogFields) out.LoggerPort { return l }

func newTestAdapter(t *testing.T) *cache.LRUCacheAdapter {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.EventsSize = 10

	adapter, err := cache.NewLRUCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, adapter)
	return adapter
}

func busyPeriod(hour int) domain.DateTimePeriod {
	return domain.DateTimePeriod{
		StartAt: time.Date(2025, time.June, 10, hour, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, time.June, 10, hour+1, 0, 0, 0, time.UTC),
	}
}

func TestLRUCacheAdapter_Disabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	adapter, err := cache.NewLRUCacheAdapter(cfg, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, adapter)
}

func TestLRUCacheAdapter_StoreAndGet(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	calendarID := uuid.New()

	from := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	events := []domain.DateTimePeriod{busyPeriod(10)}

	adapter.StoreEvents(ctx, calendarID, from, to, events)

	cached, exists := adapter.GetEvents(ctx, calendarID, from, to)
	require.True(t, exists)
	assert.Equal(t, events, cached)
}

func TestLRUCacheAdapter_MissForUnknownCalendar(t *testing.T) {
	adapter := newTestAdapter(t)

	_, exists := adapter.GetEvents(context.Background(), uuid.New(),
		time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC))

	assert.False(t, exists)
}

func TestLRUCacheAdapter_MissWhenRangeNotCovered(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	calendarID := uuid.New()

	from := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	adapter.StoreEvents(ctx, calendarID, from, to, []domain.DateTimePeriod{busyPeriod(10)})

	// Запрошенный диапазон шире закэшированного
	_, exists := adapter.GetEvents(ctx, calendarID, from, to.AddDate(0, 0, 1))
	assert.False(t, exists)

	// Более узкий диапазон внутри закэшированного отдаётся из кэша
	_, exists = adapter.GetEvents(ctx, calendarID, from.Add(2*time.Hour), to.Add(-2*time.Hour))
	assert.True(t, exists)
}

func TestLRUCacheAdapter_Invalidate(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	calendarID := uuid.New()

	from := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	adapter.StoreEvents(ctx, calendarID, from, to, []domain.DateTimePeriod{busyPeriod(10)})

	adapter.InvalidateEvents(ctx, calendarID)

	_, exists := adapter.GetEvents(ctx, calendarID, from, to)
	assert.False(t, exists)
}

func TestLRUCacheAdapter_InvalidateAll(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	from := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	adapter.StoreEvents(ctx, first, from, to, []domain.DateTimePeriod{busyPeriod(10)})
	adapter.StoreEvents(ctx, second, from, to, []domain.DateTimePeriod{busyPeriod(14)})

	adapter.InvalidateAllEvents(ctx)

	_, exists := adapter.GetEvents(ctx, first, from, to)
	assert.False(t, exists)
	_, exists = adapter.GetEvents(ctx, second, from, to)
	assert.False(t, exists)
}
