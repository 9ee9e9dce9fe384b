package models

// BookingPath is chosen once on the first step of the flow.
type BookingPath string

const (
	PathRecordOnly  BookingPath = "record-only"
	PathFullProject BookingPath = "full-project"
)

// SessionMode is derived from the session selection, never set directly.
type SessionMode string

const (
	ModeRecording SessionMode = "recording"
	ModeRental    SessionMode = "rental"
)

// RushOption selects the post-production turnaround.
type RushOption string

const (
	RushNone RushOption = "none"
	Rush48   RushOption = "rush48"
	Rush24   RushOption = "rush24"
)

// ValidSessionHours is the set of bookable durations exposed by the slider.
var ValidSessionHours = []int{1, 2, 3, 4, 5, 6, 8, 10, 12}

// IsValidSessionHours reports whether h is a bookable duration.
func IsValidSessionHours(h int) bool {
	for _, v := range ValidSessionHours {
		if v == h {
			return true
		}
	}
	return false
}

// SessionSelection describes the studio time being booked.
// Hours==1 implies rental mode: no engineer, no producer.
type SessionSelection struct {
	Hours           int  `json:"hours"`
	IncludeEngineer bool `json:"includeEngineer"`
	IncludeProducer bool `json:"includeProducer"`
	ProducerHours   int  `json:"producerHours"`
}

// Mode reports recording when any staff is included, rental otherwise.
func (s SessionSelection) Mode() SessionMode {
	if s.IncludeEngineer || s.IncludeProducer {
		return ModeRecording
	}
	return ModeRental
}

// PostProductionSelection holds the single-song post-production toggles.
// Only meaningful in recording mode.
type PostProductionSelection struct {
	Mixing          bool `json:"mixing"`
	Mastering       bool `json:"mastering"`
	MixMasterBundle bool `json:"mixMasterBundle"`
	VocalTuning     bool `json:"vocalTuning"`
	VocalEditing    bool `json:"vocalEditing"`
}

// Any reports whether a mix/master service is selected (gates rush options).
func (p PostProductionSelection) Any() bool {
	return p.Mixing || p.Mastering || p.MixMasterBundle
}

// DeliverablesSelection holds the export add-on toggles.
type DeliverablesSelection struct {
	AltVersions      bool `json:"altVersions"`
	StemsExport      bool `json:"stemsExport"`
	MultitrackExport bool `json:"multitrackExport"`
	USBMedia         bool `json:"usbMedia"`
}

// ContactInfo is the schedule-and-contact form for the record-only path.
type ContactInfo struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	Instagram          string `json:"instagram"`
	PreferredDate      string `json:"preferredDate"` // YYYY-MM-DD
	PreferredTime      string `json:"preferredTime"` // HH:00
	ProjectDescription string `json:"projectDescription"`
	AdditionalNotes    string `json:"additionalNotes"`
	ReferenceURL       string `json:"referenceUrl"`
}

// ProjectInquiry is the qualification form for the full-project path.
// It carries no pricing.
type ProjectInquiry struct {
	ArtistName       string   `json:"artistName"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	ProjectType      string   `json:"projectType"` // single | ep | album | other
	Genres           []string `json:"genres"`
	Timeline         string   `json:"timeline"` // asap | 1month | 2-3months | flexible
	HasBeats         string   `json:"hasBeats"` // yes | no | need-production
	ReferenceArtists string   `json:"referenceArtists"`
	ProjectVision    string   `json:"projectVision"`
	Budget           string   `json:"budget"` // under1k | 1k-3k | 3k-5k | 5k-10k | 10k+
}

// Totals is the derived quote. Recomputed on every change, never mutated.
type Totals struct {
	Session      int `json:"session"`
	Post         int `json:"post"`
	Deliverables int `json:"deliverables"`
	Rush         int `json:"rush"`
	Grand        int `json:"grand"`
}
