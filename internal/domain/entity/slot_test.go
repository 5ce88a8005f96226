package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-09-02 is a Wednesday.
var wednesday = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

func TestValidateSlotDay_Today(t *testing.T) {
	err := ValidateSlotDay(wednesday, wednesday)
	assert.NoError(t, err)
}

func TestValidateSlotDay_TodayWithElapsedClock(t *testing.T) {
	// Date granularity only: a slot for today passes even late in the day
	today := time.Date(2026, 9, 2, 23, 30, 0, 0, time.UTC)
	err := ValidateSlotDay(wednesday, today)
	assert.NoError(t, err)
}

func TestValidateSlotDay_Future(t *testing.T) {
	err := ValidateSlotDay(wednesday.AddDate(0, 0, 1), wednesday)
	assert.NoError(t, err)
}

func TestValidateSlotDay_Past(t *testing.T) {
	err := ValidateSlotDay(wednesday.AddDate(0, 0, -1), wednesday)
	assert.ErrorIs(t, err, ErrPastDay)
}

func TestValidateSlotDay_Saturday(t *testing.T) {
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	err := ValidateSlotDay(saturday, wednesday)
	assert.ErrorIs(t, err, ErrWeekendDay)
}

func TestValidateSlotDay_Sunday(t *testing.T) {
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	err := ValidateSlotDay(sunday, wednesday)
	assert.ErrorIs(t, err, ErrWeekendDay)
}

func TestValidateSlotDay_PastWeekendReportsPastFirst(t *testing.T) {
	pastSunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	err := ValidateSlotDay(pastSunday, wednesday)
	assert.ErrorIs(t, err, ErrPastDay)
}

func TestHourBlock_IsValid(t *testing.T) {
	for _, h := range []HourBlock{HourBlock1, HourBlock2, HourBlock3, HourBlock4, HourBlock5} {
		assert.True(t, h.IsValid(), "block %s", h)
	}

	assert.False(t, HourBlock("0").IsValid())
	assert.False(t, HourBlock("6").IsValid())
	assert.False(t, HourBlock("").IsValid())
}

func TestHourBlock_Label(t *testing.T) {
	assert.Equal(t, "07:00 - 08:00", HourBlock1.Label())
	assert.Equal(t, "11:00 - 12:00", HourBlock5.Label())
	assert.Equal(t, "", HourBlock("9").Label())
}
