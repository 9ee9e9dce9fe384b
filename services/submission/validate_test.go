package submission

import (
	"strings"
	"testing"
	"time"

	"alliancewav/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

func validContact() models.ContactInfo {
	return models.ContactInfo{
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "(514) 555-1234",
		PreferredDate: "2026-09-12",
		PreferredTime: "14:00",
	}
}

func TestValidateContactAcceptsValidInput(t *testing.T) {
	assert.NoError(t, ValidateContact(validContact(), testNow))
}

func TestValidateContactName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"single character", "A", true},
		{"whitespace only", "   ", true},
		{"over 100 chars", strings.Repeat("a", 101), true},
		{"embedded link", "Ada https://spam.example", true},
		{"two characters", "Jo", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validContact()
			c.Name = tc.value
			err := ValidateContact(c, testNow)
			if tc.wantErr {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "name", vErr.Field)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContactEmail(t *testing.T) {
	for _, bad := range []string{"", "not-an-email", "a@b", "a b@example.com", "a@-example.com"} {
		c := validContact()
		c.Email = bad
		assert.Error(t, ValidateContact(c, testNow), "email %q", bad)
	}
	for _, ok := range []string{"ada@example.com", "a.b+tag@sub.example.co"} {
		c := validContact()
		c.Email = ok
		assert.NoError(t, ValidateContact(c, testNow), "email %q", ok)
	}
}

func TestValidateContactPhone(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", true},
		{"12345", true},                  // too few digits
		{"1234567890123456", true},       // too many digits
		{"514-555-1234 ext 2", true},     // letters not permitted
		{"+1 (514) 555-1234", false},     // formatting stripped for counting
		{"514.555.1234", false},
	}
	for _, tc := range tests {
		c := validContact()
		c.Phone = tc.value
		err := ValidateContact(c, testNow)
		if tc.wantErr {
			assert.Error(t, err, "phone %q", tc.value)
		} else {
			assert.NoError(t, err, "phone %q", tc.value)
		}
	}
}

func TestValidateContactPreferredDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"missing", "", true},
		{"unparseable", "next tuesday", true},
		{"today", "2026-08-28", true},
		{"tomorrow", "2026-08-29", true},
		{"exactly two days out", "2026-08-30", false},
		{"far future", "2027-03-01", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := validContact()
			c.PreferredDate = tc.value
			err := ValidateContact(c, testNow)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContactPreferredTime(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", true},
		{"14:30", true}, // not on the hour
		{"03:00", true}, // closed overnight gap
		{"06:00", false},
		{"23:00", false},
		{"00:00", false},
		{"01:00", false},
	}
	for _, tc := range tests {
		c := validContact()
		c.PreferredTime = tc.value
		err := ValidateContact(c, testNow)
		if tc.wantErr {
			assert.Error(t, err, "time %q", tc.value)
		} else {
			assert.NoError(t, err, "time %q", tc.value)
		}
	}
}

func TestValidateContactReferenceURL(t *testing.T) {
	c := validContact()
	c.ReferenceURL = ""
	assert.NoError(t, ValidateContact(c, testNow))

	c.ReferenceURL = "https://open.spotify.com/track/abc"
	assert.NoError(t, ValidateContact(c, testNow))

	for _, bad := range []string{"ftp://example.com/file", "javascript:alert(1)", "not a url"} {
		c.ReferenceURL = bad
		assert.Error(t, ValidateContact(c, testNow), "url %q", bad)
	}
}

func TestValidateContactFreeTextLimits(t *testing.T) {
	c := validContact()
	c.ProjectDescription = strings.Repeat("x", 501)
	assert.Error(t, ValidateContact(c, testNow))

	c = validContact()
	c.ProjectDescription = strings.Repeat("x", 500)
	c.AdditionalNotes = strings.Repeat("y", 300)
	assert.NoError(t, ValidateContact(c, testNow))

	c.AdditionalNotes = strings.Repeat("y", 301)
	assert.Error(t, ValidateContact(c, testNow))
}

func validInquiry() models.ProjectInquiryRequest {
	return models.ProjectInquiryRequest{
		Type:        "project-inquiry",
		BookingPath: models.PathFullProject,
		Contact: models.InquiryContact{
			ArtistName: "Nova",
			Email:      "nova@example.com",
			Phone:      "4385551234",
		},
		Project: models.InquiryProject{
			Type:     "ep",
			Genres:   []string{"R&B", "Soul"},
			HasBeats: "no",
		},
		Timeline: "1month",
		Budget:   "3k-5k",
	}
}

func TestValidateInquiry(t *testing.T) {
	assert.NoError(t, ValidateInquiry(validInquiry()))

	t.Run("artist name required", func(t *testing.T) {
		req := validInquiry()
		req.Contact.ArtistName = "X"
		assert.Error(t, ValidateInquiry(req))
	})

	t.Run("unknown project type", func(t *testing.T) {
		req := validInquiry()
		req.Project.Type = "mixtape"
		assert.Error(t, ValidateInquiry(req))
	})

	t.Run("unknown genre", func(t *testing.T) {
		req := validInquiry()
		req.Project.Genres = []string{"Hip-Hop", "Screamo"}
		assert.Error(t, ValidateInquiry(req))
	})

	t.Run("unknown timeline and budget", func(t *testing.T) {
		req := validInquiry()
		req.Timeline = "whenever"
		assert.Error(t, ValidateInquiry(req))

		req = validInquiry()
		req.Budget = "1 million"
		assert.Error(t, ValidateInquiry(req))
	})

	t.Run("optional enums may be empty", func(t *testing.T) {
		req := validInquiry()
		req.Project.Type = ""
		req.Project.HasBeats = ""
		req.Timeline = ""
		req.Budget = ""
		req.Project.Genres = nil
		assert.NoError(t, ValidateInquiry(req))
	})
}
