package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(window time.Duration, max int) (*Limiter, *time.Time) {
	l := New(window, max)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiterAllowsUpToCap(t *testing.T) {
	l, _ := newTestLimiter(time.Hour, 5)

	for i := 0; i < 5; i++ {
		d := l.CheckAndIncrement("1.2.3.4")
		assert.True(t, d.Allowed, "hit %d", i+1)
		assert.Equal(t, 4-i, d.Remaining)
	}

	d := l.CheckAndIncrement("1.2.3.4")
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, time.Hour, d.ResetIn)
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(time.Hour, 1)

	assert.True(t, l.CheckAndIncrement("1.2.3.4").Allowed)
	assert.False(t, l.CheckAndIncrement("1.2.3.4").Allowed)
	assert.True(t, l.CheckAndIncrement("5.6.7.8").Allowed)
}

func TestLimiterWindowResets(t *testing.T) {
	l, now := newTestLimiter(time.Hour, 2)

	l.CheckAndIncrement("1.2.3.4")
	l.CheckAndIncrement("1.2.3.4")
	assert.False(t, l.CheckAndIncrement("1.2.3.4").Allowed)

	*now = now.Add(30 * time.Minute)
	d := l.CheckAndIncrement("1.2.3.4")
	assert.False(t, d.Allowed)
	assert.Equal(t, 30*time.Minute, d.ResetIn)

	*now = now.Add(30 * time.Minute)
	assert.True(t, l.CheckAndIncrement("1.2.3.4").Allowed)
}

func TestDeniedHitsDoNotExtendWindow(t *testing.T) {
	l, now := newTestLimiter(time.Hour, 1)

	l.CheckAndIncrement("1.2.3.4")
	for i := 0; i < 10; i++ {
		*now = now.Add(time.Minute)
		l.CheckAndIncrement("1.2.3.4")
	}

	// The window started at the first hit; hammering while blocked must
	// not push the reset out.
	*now = now.Add(50 * time.Minute)
	assert.True(t, l.CheckAndIncrement("1.2.3.4").Allowed)
}

func TestSweepDropsExpiredWindows(t *testing.T) {
	l, now := newTestLimiter(time.Hour, 5)

	l.CheckAndIncrement("1.2.3.4")
	l.CheckAndIncrement("5.6.7.8")
	assert.Equal(t, 0, l.sweep())

	*now = now.Add(2 * time.Hour)
	assert.Equal(t, 2, l.sweep())
	assert.Empty(t, l.entries)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "unknown"},
		{"1.2.3.4", "1.2.3.4"},
		{"1.2.3.4, 10.0.0.1", "1.2.3.4"},
		{" 1.2.3.4 ,10.0.0.1", "1.2.3.4"},
		{" , 10.0.0.1", "unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClientKey(tc.header), "header %q", tc.header)
	}
}
