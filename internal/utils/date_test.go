package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbondarchuk/vivid-availability/internal/utils"
)

func TestStartCurrentDay(t *testing.T) {
	location, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	moment := time.Date(2025, time.June, 10, 15, 42, 7, 123, location)
	start := utils.StartCurrentDay(moment)

	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, location), start)
	assert.Equal(t, location, start.Location())
}

func TestStartNextDay(t *testing.T) {
	moment := time.Date(2025, time.June, 10, 15, 42, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC), utils.StartNextDay(moment))

	// Переход через конец месяца
	endOfMonth := time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), utils.StartNextDay(endOfMonth))
}

func TestISODate(t *testing.T) {
	moment := time.Date(2025, time.June, 5, 15, 42, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-05", utils.ISODate(moment))
}

func TestRoundUpToMinute(t *testing.T) {
	whole := time.Date(2025, time.June, 10, 10, 45, 0, 0, time.UTC)
	assert.Equal(t, whole, utils.RoundUpToMinute(whole))

	withSeconds := time.Date(2025, time.June, 10, 10, 45, 1, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 10, 10, 46, 0, 0, time.UTC), utils.RoundUpToMinute(withSeconds))

	withNanos := time.Date(2025, time.June, 10, 10, 45, 0, 1, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 10, 10, 46, 0, 0, time.UTC), utils.RoundUpToMinute(withNanos))
}

func TestParseDate(t *testing.T) {
	location, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	parsed, err := utils.ParseDate("2025-06-10T09:00:00+02:00", location)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2025, time.June, 10, 7, 0, 0, 0, time.UTC)))

	parsed, err = utils.ParseDate("2025-06-10T09:00:00", location)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 10, 9, 0, 0, 0, location), parsed)

	parsed, err = utils.ParseDate("2025-06-10", location)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, location), parsed)

	_, err = utils.ParseDate("10.06.2025", location)
	assert.Error(t, err)
}
