package quote

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAfterHoursCount(t *testing.T) {
	bh := DefaultBusinessHours()

	tests := []struct {
		name      string
		startHour int
		duration  int
		want      int
	}{
		{"fully inside business hours", 12, 4, 0},
		{"starts before open", 9, 4, 2},
		{"runs past close", 20, 4, 2},
		{"ends exactly at close", 18, 4, 0},
		{"starts exactly at open", 11, 2, 0},
		{"spills on both sides", 9, 14, 3},
		{"entirely after close", 22, 2, 2},
		{"entirely before open", 6, 3, 3},
		{"zero duration", 12, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AfterHoursCount(bh, time.Wednesday, tc.startHour, tc.duration)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAfterHoursCountNeverExceedsDuration(t *testing.T) {
	bh := DefaultBusinessHours()
	for _, start := range []int{0, 6, 11, 15, 21, 23} {
		for _, dur := range []int{1, 2, 4, 8, 12} {
			got := AfterHoursCount(bh, time.Friday, start, dur)
			assert.LessOrEqual(t, got, dur, "start %d dur %d", start, dur)
			assert.GreaterOrEqual(t, got, 0, "start %d dur %d", start, dur)
		}
	}
}

func TestAfterHoursCountMissingWeekday(t *testing.T) {
	bh := BusinessHours{time.Monday: {Open: 11, Close: 22}}

	// A day without a configured window bills the whole session.
	assert.Equal(t, 4, AfterHoursCount(bh, time.Sunday, 12, 4))
	assert.Equal(t, 0, AfterHoursCount(bh, time.Monday, 12, 4))
}

func TestAfterHoursForBooking(t *testing.T) {
	bh := DefaultBusinessHours()

	// 2026-09-12 is a Saturday.
	assert.Equal(t, 2, AfterHoursForBooking(bh, "2026-09-12", "20:00", 4))
	assert.Equal(t, 0, AfterHoursForBooking(bh, "2026-09-12", "12:00", 4))

	// Schedule not yet entered quotes no premium.
	assert.Equal(t, 0, AfterHoursForBooking(bh, "", "20:00", 4))
	assert.Equal(t, 0, AfterHoursForBooking(bh, "2026-09-12", "", 4))
	assert.Equal(t, 0, AfterHoursForBooking(bh, "not-a-date", "20:00", 4))
	assert.Equal(t, 0, AfterHoursForBooking(bh, "2026-09-12", "late", 4))
}
