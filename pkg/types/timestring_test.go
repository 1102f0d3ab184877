package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("9:5")
	require.NoError(t, err)
	assert.Equal(t, "09:05", ts.String())

	_, err = NewTimeStringFromString("24:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("abc")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Accessors(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 10, 14, 35, 12, 0, time.UTC))

	assert.Equal(t, "14:35", ts.String())
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 35, ts.Minute())
	assert.Equal(t, 14*60+35, ts.Minutes())
}

func TestTimeString_Compare(t *testing.T) {
	early := NewTimeStringFromHour(13)
	late := NewTimeStringFromHour(20)

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := NewTimeStringFromHour(21)

	moved, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "22:30", moved.String())

	_, err = ts.AddMinutes(4 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}
