package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.March, 15), d)
	assert.Equal(t, "2024-03-15", d.String())

	for _, s := range []string{"", "2024-3-15", "15/03/2024", "2024-02-30", "2024-03-15T10:00:00Z"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestDateOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	d := DateOf(time.Date(2024, time.March, 20, 23, 59, 0, 0, loc))
	assert.Equal(t, NewDate(2024, time.March, 20), d)
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		from   Date
		months int
		day    int
		want   Date
	}{
		{NewDate(2024, time.January, 31), 1, 31, NewDate(2024, time.February, 29)},
		{NewDate(2023, time.January, 31), 1, 31, NewDate(2023, time.February, 28)},
		{NewDate(2024, time.February, 29), -1, 31, NewDate(2024, time.January, 31)},
		{NewDate(2024, time.December, 15), 1, 15, NewDate(2025, time.January, 15)},
		{NewDate(2024, time.January, 10), -1, 10, NewDate(2023, time.December, 10)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.AddMonthsClamped(tt.months, tt.day), "%v %+d", tt.from, tt.months)
	}
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2024, time.February))
	assert.Equal(t, 28, DaysIn(2100, time.February))
	assert.Equal(t, 31, DaysIn(2024, time.March))
	assert.Equal(t, 30, DaysIn(2024, time.April))
}
