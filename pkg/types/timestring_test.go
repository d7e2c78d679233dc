package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "hours and minutes", input: "10:30", want: 630},
		{name: "postgres time with seconds", input: "06:00:00", want: 360},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.Minutes())
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := MustTimeString("22:00")

	end, err := start.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "23:00", end.String())
	assert.True(t, start.IsBefore(end))
	assert.False(t, end.IsBefore(start))
	assert.False(t, start.IsBefore(start))

	_, err = start.AddMinutes(180)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_ScanAndValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("14:00:00")))
	assert.Equal(t, "14:00", ts.String())

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "14:00", v)

	var empty TimeString
	require.NoError(t, empty.Scan(nil))
	assert.True(t, empty.IsZero())
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	got := MustTimeString("14:20").On(date, loc)

	assert.Equal(t, time.Date(2026, 10, 20, 14, 20, 0, 0, loc), got)
}
