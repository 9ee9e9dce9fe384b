package quote

import "time"

// OpenClose is a single day's business-hours window, in whole hours.
type OpenClose struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// BusinessHours maps a weekday to its open/close window.
type BusinessHours map[time.Weekday]OpenClose

// DefaultBusinessHours is the studio's reference schedule: 11:00-22:00
// every day.
func DefaultBusinessHours() BusinessHours {
	bh := make(BusinessHours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		bh[d] = OpenClose{Open: 11, Close: 22}
	}
	return bh
}

// AfterHoursCount counts the session-hours that fall before open or at/after
// close on the given weekday. Half-open interval overlap, clamped so the
// result never exceeds the session duration and never double-counts a
// session lying entirely outside business hours. A weekday missing from the
// table bills the whole session as after-hours.
func AfterHoursCount(bh BusinessHours, day time.Weekday, startHour, duration int) int {
	if duration <= 0 {
		return 0
	}
	window, ok := bh[day]
	if !ok {
		return duration
	}

	before := 0
	if startHour < window.Open {
		before = min(window.Open-startHour, duration)
	}
	after := 0
	if startHour+duration > window.Close {
		after = min(startHour+duration-window.Close, duration-before)
	}

	total := before + after
	if total < 0 {
		return 0
	}
	return min(total, duration)
}

// AfterHoursForBooking resolves the after-hours count for a preferred
// date ("2006-01-02") and time ("15:04"). An unset or unparseable
// date/time yields zero, matching the wizard before schedule entry.
func AfterHoursForBooking(bh BusinessHours, date, startTime string, duration int) int {
	if date == "" || startTime == "" {
		return 0
	}
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0
	}
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	return AfterHoursCount(bh, d.Weekday(), t.Hour(), duration)
}
