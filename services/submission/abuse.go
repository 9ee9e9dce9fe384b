package submission

import (
	"regexp"
	"strings"
	"time"
)

// MinFormFillTime is the shortest believable gap between a human opening
// the form and submitting it.
const MinFormFillTime = 3 * time.Second

var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(viagra|cialis|casino|lottery|winner|click here|buy now|free money)\b`),
	regexp.MustCompile(`(?i)https?://[^\s]+\.(ru|cn|tk|ml|ga|cf)\b`),
	regexp.MustCompile(`(?i)<script|<iframe|javascript:`),
}

// RejectReason records why a submission was silently dropped. It is logged,
// never returned to the caller.
type RejectReason string

const (
	RejectNone     RejectReason = ""
	RejectHoneypot RejectReason = "honeypot"
	RejectTooFast  RejectReason = "too-fast"
	RejectSpam     RejectReason = "spam-pattern"
)

// Screen runs the silent anti-abuse checks. A non-empty reason means the
// submission must be acknowledged as successful but not processed.
// formLoadTime is Unix millis of form open; zero means the client did not
// report it, which skips the timing check.
//
// The spam-pattern check only applies to submissions that already passed
// field validation, so callers with free text to inspect run ScreenSpam
// separately after validating.
func Screen(honeypot string, formLoadTime int64, now time.Time, freeText ...string) RejectReason {
	if honeypot != "" {
		return RejectHoneypot
	}
	if formLoadTime > 0 {
		loaded := time.UnixMilli(formLoadTime)
		if now.Sub(loaded) < MinFormFillTime {
			return RejectTooFast
		}
	}
	return ScreenSpam(freeText...)
}

// ScreenSpam runs the spam-pattern check over the submission's free-text
// fields.
func ScreenSpam(freeText ...string) RejectReason {
	combined := strings.Join(freeText, " ")
	for _, pattern := range spamPatterns {
		if pattern.MatchString(combined) {
			return RejectSpam
		}
	}
	return RejectNone
}
