package slot_finder_service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeSearchBoundaries_UnconstrainedWindow(t *testing.T) {
	cfg := baseConfiguration()
	from := utc(2025, time.June, 10, 0, 0)
	to := utc(2025, time.June, 11, 0, 0)
	now := utc(2025, time.June, 1, 0, 0)

	first, last := computeSearchBoundaries(from, to, now, time.UTC, cfg)

	assert.Equal(t, from, first)
	assert.Equal(t, to, last)
}

func TestComputeSearchBoundaries_NowInsideWindow(t *testing.T) {
	cfg := baseConfiguration()
	cfg.MinAvailableTimeBeforeSlot = 10
	cfg.MinTimeBeforeFirstSlot = 50
	from := utc(2025, time.June, 10, 0, 0)
	to := utc(2025, time.June, 11, 0, 0)
	now := utc(2025, time.June, 10, 9, 0)

	first, _ := computeSearchBoundaries(from, to, now, time.UTC, cfg)

	// Оба буфера отодвигают начало поиска от текущего момента
	assert.Equal(t, utc(2025, time.June, 10, 10, 0), first)
}

func TestComputeSearchBoundaries_MaxDaysLimitsEnd(t *testing.T) {
	cfg := baseConfiguration()
	cfg.MaxDaysBeforeLastSlot = 2
	from := utc(2025, time.June, 10, 0, 0)
	to := utc(2025, time.June, 20, 0, 0)
	now := utc(2025, time.June, 10, 15, 30)

	_, last := computeSearchBoundaries(from, to, now, time.UTC, cfg)

	// Лимит — конец последнего разрешённого дня, а не момент now + N дней
	assert.Equal(t, utc(2025, time.June, 13, 0, 0), last)
}

func TestComputeSearchBoundaries_ConvertsToSearchLocation(t *testing.T) {
	location, _ := time.LoadLocation("Europe/Paris")
	cfg := baseConfiguration()
	from := utc(2025, time.June, 10, 0, 0)
	to := utc(2025, time.June, 11, 0, 0)
	now := utc(2025, time.June, 1, 0, 0)

	first, last := computeSearchBoundaries(from, to, now, location, cfg)

	assert.Equal(t, location, first.Location())
	assert.Equal(t, location, last.Location())
	assert.True(t, first.Equal(from))
	assert.True(t, last.Equal(to))
}
