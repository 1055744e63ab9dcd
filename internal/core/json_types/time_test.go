package json_types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbondarchuk/vivid-availability/internal/core/json_types"
)

func TestTime_Unmarshal(t *testing.T) {
	var clock json_types.Time
	require.NoError(t, json.Unmarshal([]byte(`"14:35"`), &clock))

	assert.Equal(t, 14, clock.Hour())
	assert.Equal(t, 35, clock.Minute())
}

func TestTime_UnmarshalInvalid(t *testing.T) {
	var clock json_types.Time
	assert.Error(t, json.Unmarshal([]byte(`"25:00"`), &clock))
	assert.Error(t, json.Unmarshal([]byte(`"9:00 AM"`), &clock))
}

func TestTime_UnmarshalNonString(t *testing.T) {
	// Число вместо строки — ошибка разбора, а не паника
	var clock json_types.Time
	assert.Error(t, json.Unmarshal([]byte(`5`), &clock))
	assert.Error(t, json.Unmarshal([]byte(`true`), &clock))
}

func TestTime_MarshalRoundTrip(t *testing.T) {
	var clock json_types.Time
	require.NoError(t, json.Unmarshal([]byte(`"09:05"`), &clock))

	data, err := json.Marshal(clock)
	require.NoError(t, err)
	assert.Equal(t, `"09:05"`, string(data))
}
