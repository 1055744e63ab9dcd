package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbondarchuk/vivid-availability/internal/core/domain"
)

func TestSlotStart_UnmarshalNumber(t *testing.T) {
	var slotStart domain.SlotStart
	require.NoError(t, json.Unmarshal([]byte(`15`), &slotStart))

	assert.Equal(t, domain.SlotStartFixedStep, slotStart.Kind)
	assert.Equal(t, 15, slotStart.Step)
}

func TestSlotStart_UnmarshalKeywords(t *testing.T) {
	var slotStart domain.SlotStart
	require.NoError(t, json.Unmarshal([]byte(`"every-hour"`), &slotStart))
	assert.Equal(t, domain.SlotStartEveryHour, slotStart.Kind)

	require.NoError(t, json.Unmarshal([]byte(`"custom"`), &slotStart))
	assert.Equal(t, domain.SlotStartCustom, slotStart.Kind)
}

func TestSlotStart_UnmarshalUnknownKind(t *testing.T) {
	var slotStart domain.SlotStart
	assert.Error(t, json.Unmarshal([]byte(`"every-minute"`), &slotStart))
}

func TestSlotStart_MarshalRoundTrip(t *testing.T) {
	cases := []domain.SlotStart{
		{Kind: domain.SlotStartFixedStep, Step: 30},
		{Kind: domain.SlotStartEveryHour},
		{Kind: domain.SlotStartCustom},
	}

	for _, slotStart := range cases {
		data, err := json.Marshal(slotStart)
		require.NoError(t, err)

		var decoded domain.SlotStart
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, slotStart, decoded)
	}
}

func TestTimeSlotsFinderConfiguration_Unmarshal(t *testing.T) {
	payload := `{
		"schedule": {
			"2025-06-10": [{"start": "09:00", "end": "17:00"}]
		},
		"unavailablePeriods": [
			{"startAt": {"month": 6, "day": 10, "hour": 12}, "endAt": {"month": 6, "day": 10, "hour": 13}}
		],
		"timeZone": "Europe/Paris",
		"timeSlotDuration": 30,
		"slotStart": "custom",
		"customSlots": ["09:15", "14:00"],
		"minAvailableTimeBeforeSlot": 15,
		"maxDaysBeforeLastSlot": 7
	}`

	var cfg domain.TimeSlotsFinderConfiguration
	require.NoError(t, json.Unmarshal([]byte(payload), &cfg))

	assert.Equal(t, "Europe/Paris", cfg.TimeZone)
	assert.Equal(t, 30, cfg.TimeSlotDuration)
	assert.Equal(t, domain.SlotStartCustom, cfg.SlotStart.Kind)
	assert.Equal(t, 15, cfg.MinAvailableTimeBeforeSlot)
	assert.Equal(t, 0, cfg.MinAvailableTimeAfterSlot, "absent optional field defaults to zero")
	assert.Equal(t, 7, cfg.MaxDaysBeforeLastSlot)

	require.Len(t, cfg.Schedule["2025-06-10"], 1)
	assert.Equal(t, domain.Shift{Start: "09:00", End: "17:00"}, cfg.Schedule["2025-06-10"][0])

	require.Len(t, cfg.CustomSlots, 2)
	assert.Equal(t, 9, cfg.CustomSlots[0].Hour())
	assert.Equal(t, 15, cfg.CustomSlots[0].Minute())

	require.Len(t, cfg.UnavailablePeriods, 1)
	period := cfg.UnavailablePeriods[0]
	assert.True(t, period.StartAt.Recurring())
	assert.Equal(t, time.June, period.StartAt.Month)
	require.NotNil(t, period.StartAt.Hour)
	assert.Equal(t, 12, *period.StartAt.Hour)
}

func TestPeriodMoment_Recurring(t *testing.T) {
	assert.True(t, domain.PeriodMoment{Month: time.June, Day: 10}.Recurring())
	assert.False(t, domain.PeriodMoment{Year: 2025, Month: time.June, Day: 10}.Recurring())
}
