package submission

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"alliancewav/models"
)

// ValidationError reports which field failed and why. It maps to a 400 at
// the HTTP boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MinAdvanceDays is the earliest a session can be requested, counted in
// whole days from today.
const MinAdvanceDays = 2

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)
	urlInName    = regexp.MustCompile(`https?://`)
	phoneAllowed = regexp.MustCompile(`^[0-9()+\-. ]+$`)
	digitsOnly   = regexp.MustCompile(`[^0-9]`)
)

// Enumerated vocabularies for the project inquiry form.
var (
	projectTypes = map[string]bool{"single": true, "ep": true, "album": true, "other": true}
	timelines    = map[string]bool{"asap": true, "1month": true, "2-3months": true, "flexible": true}
	budgets      = map[string]bool{"under1k": true, "1k-3k": true, "3k-5k": true, "5k-10k": true, "10k+": true}
	beatsOptions = map[string]bool{"yes": true, "no": true, "need-production": true}

	genreOptions = map[string]bool{
		"Hip-Hop": true, "R&B": true, "Pop": true, "Trap": true, "Drill": true,
		"Afrobeats": true, "Dancehall": true, "Reggae": true, "Soul": true,
		"Jazz": true, "Rock": true, "Electronic": true, "Latin": true,
		"Country": true, "Gospel": true, "Spoken Word": true, "Podcast": true,
		"Other": true,
	}
)

func validateName(field, name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return invalid(field, "must be at least 2 characters")
	}
	if len(trimmed) > 100 {
		return invalid(field, "must be at most 100 characters")
	}
	if urlInName.MatchString(trimmed) {
		return invalid(field, "must not contain a link")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return invalid("email", "is not a valid email address")
	}
	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return invalid("phone", "is required")
	}
	if !phoneAllowed.MatchString(phone) {
		return invalid("phone", "contains invalid characters")
	}
	digits := digitsOnly.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 15 {
		return invalid("phone", "must contain 10 to 15 digits")
	}
	return nil
}

// validatePreferredDate requires a real calendar date at least two days out.
// now is injectable for tests.
func validatePreferredDate(dateStr string, now time.Time) error {
	if dateStr == "" {
		return invalid("preferredDate", "is required")
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return invalid("preferredDate", "is not a valid date")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, MinAdvanceDays)
	if d.Before(earliest) {
		return invalid("preferredDate", fmt.Sprintf("must be at least %d days from today", MinAdvanceDays))
	}
	return nil
}

// validatePreferredTime requires an hour-granularity HH:MM within the
// bookable range (06:00 through 01:00 the next day).
func validatePreferredTime(timeStr string) error {
	if timeStr == "" {
		return invalid("preferredTime", "is required")
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return invalid("preferredTime", "is not a valid time")
	}
	if t.Minute() != 0 {
		return invalid("preferredTime", "must be on the hour")
	}
	hour := t.Hour()
	if hour >= 2 && hour < 6 {
		return invalid("preferredTime", "must be between 06:00 and 01:00")
	}
	return nil
}

func validateReferenceURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid("referenceUrl", "must be a valid http or https link")
	}
	return nil
}

// ValidateContact applies the full server-side rule set to a booking's
// contact block.
func ValidateContact(contact models.ContactInfo, now time.Time) error {
	if err := validateName("name", contact.Name); err != nil {
		return err
	}
	if err := validateEmail(contact.Email); err != nil {
		return err
	}
	if err := validatePhone(contact.Phone); err != nil {
		return err
	}
	if err := validatePreferredDate(contact.PreferredDate, now); err != nil {
		return err
	}
	if err := validatePreferredTime(contact.PreferredTime); err != nil {
		return err
	}
	if err := validateReferenceURL(contact.ReferenceURL); err != nil {
		return err
	}
	if len(contact.ProjectDescription) > 500 {
		return invalid("projectDescription", "must be at most 500 characters")
	}
	if len(contact.AdditionalNotes) > 300 {
		return invalid("additionalNotes", "must be at most 300 characters")
	}
	return nil
}

// ValidateInquiry applies the rule set for the full-project qualification form.
func ValidateInquiry(req models.ProjectInquiryRequest) error {
	if err := validateName("artistName", req.Contact.ArtistName); err != nil {
		return err
	}
	if err := validateEmail(req.Contact.Email); err != nil {
		return err
	}
	if err := validatePhone(req.Contact.Phone); err != nil {
		return err
	}
	if req.Project.Type != "" && !projectTypes[req.Project.Type] {
		return invalid("project.type", "is not a recognized project type")
	}
	for _, genre := range req.Project.Genres {
		if !genreOptions[genre] {
			return invalid("project.genres", "contains an unrecognized genre")
		}
	}
	if req.Project.HasBeats != "" && !beatsOptions[req.Project.HasBeats] {
		return invalid("project.hasBeats", "is not a recognized option")
	}
	if req.Timeline != "" && !timelines[req.Timeline] {
		return invalid("timeline", "is not a recognized timeline")
	}
	if req.Budget != "" && !budgets[req.Budget] {
		return invalid("budget", "is not a recognized budget range")
	}
	return nil
}
