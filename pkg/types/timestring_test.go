package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	_, err = NewTimeStringFromString("9:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestNewTimeString_DropsDateAndSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.March, 3, 13, 30, 45, 0, time.UTC))
	assert.Equal(t, "13:30", ts.String())
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("15:30").Validate())
	assert.ErrorIs(t, TimeString("15-30").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("").Validate(), ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("13:30")

	end, err := ts.AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, "15:30", end.String())

	// Переход через полночь остается в рамках суток
	late, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "00:30", late.String())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("15:30").IsAfter("13:30"))
	assert.False(t, TimeString("13:30").IsAfter("15:30"))
}
