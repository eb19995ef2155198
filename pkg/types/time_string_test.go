package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "09:00", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "23:59", false},
		{"missing zero padding", "9:00", true},
		{"hours out of range", "24:00", true},
		{"minutes out of range", "10:60", true},
		{"wrong separator", "10-30", true},
		{"trailing seconds", "10:30:00", true},
		{"empty", "", true},
		{"garbage", "ab:cd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	t.Run("adds within day", func(t *testing.T) {
		result, err := ts.AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("11:30"), result)
	})

	t.Run("end of day becomes 24:00", func(t *testing.T) {
		late := TimeString("23:30")
		result, err := late.AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("24:00"), result)
	})

	t.Run("overflow past midnight fails", func(t *testing.T) {
		late := TimeString("23:30")
		_, err := late.AddMinutes(45)
		assert.Error(t, err)
	})

	t.Run("negative result fails", func(t *testing.T) {
		early := TimeString("00:10")
		_, err := early.AddMinutes(-30)
		assert.Error(t, err)
	})
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
	// Сравнение строк корректно благодаря ведущим нулям
	assert.True(t, TimeString("09:30").IsBefore("13:00"))
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("postgres TIME with seconds", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("10:30:00"))
		assert.Equal(t, TimeString("10:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("08:15")))
		assert.Equal(t, TimeString("08:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2026, 9, 15, 14, 45, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("14:45"), ts)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.Error(t, ts.Scan(42))
	})
}

func TestTimeString_JSON(t *testing.T) {
	type payload struct {
		StartTime TimeString `json:"startTime"`
	}

	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(payload{StartTime: "10:00"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"startTime":"10:00"}`, string(data))

		var decoded payload
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, TimeString("10:00"), decoded.StartTime)
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		var decoded payload
		assert.Error(t, json.Unmarshal([]byte(`{"startTime":"25:00"}`), &decoded))
	})
}
