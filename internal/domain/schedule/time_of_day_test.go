//go:build unit

package schedule_test

import (
	"encoding/json"
	"testing"
	"time"

	"cleanspace/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:00", want: "08:00:00"},
		{in: "23:59:59", want: "23:59:59"},
		{in: "00:00", want: "00:00:00"},
		{in: "24:00", wantErr: true},
		{in: "8am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := schedule.ParseTimeOfDay(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeOfDayOf_KeepsSubSecondPrecision(t *testing.T) {
	at := schedule.TimeOfDayOf(time.Date(2030, 1, 7, 8, 0, 0, 1, time.UTC))
	assert.True(t, schedule.MustTimeOfDay(8, 0).Before(at))
}

func TestTimeOfDay_JSON(t *testing.T) {
	var v struct {
		Open schedule.TimeOfDay `json:"open"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"open":"09:30"}`), &v))
	assert.Equal(t, 9*time.Hour+30*time.Minute, v.Open.Offset())

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"open":"09:30:00"}`, string(b))
}
