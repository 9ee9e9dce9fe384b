package models

// Wire shapes for POST /api/booking. The endpoint accepts two variants,
// discriminated by the "type" field before any business logic runs.

// ServiceLine is an itemized post-production service as submitted.
type ServiceLine struct {
	Qty               int  `json:"qty"`
	Price             int  `json:"price"`
	RevisionsIncluded int  `json:"revisionsIncluded,omitempty"`
	IncludesTuning    bool `json:"includesVocalTuning,omitempty"`
	IncludesEditing   bool `json:"includesVocalEditing,omitempty"`
}

// VocalLine carries a vocal service with its waived quantity.
type VocalLine struct {
	Qty     int `json:"qty"`
	Price   int `json:"price"`
	FreeQty int `json:"freeQty"`
}

// SessionPayload is the session block of a booking submission.
type SessionPayload struct {
	Hours           int  `json:"hours"`
	IncludeEngineer bool `json:"includeEngineer"`
	IncludeProducer bool `json:"includeProducer"`
	ProducerHours   int  `json:"producerHours"`
	IsAfterHours    bool `json:"isAfterHours"`
	AfterHoursCount int  `json:"afterHoursCount"`
	Total           int  `json:"total"`
}

// PostProductionPayload is null for rental-mode submissions.
type PostProductionPayload struct {
	Mixing          ServiceLine `json:"mixing"`
	Mastering       ServiceLine `json:"mastering"`
	MixMasterBundle ServiceLine `json:"mixMasterBundle"`
	VocalTuning     VocalLine   `json:"vocalTuning"`
	VocalEditing    VocalLine   `json:"vocalEditing"`
	Total           int         `json:"total"`
}

// DeliverablesPayload carries priced deliverable amounts (zero = not selected).
type DeliverablesPayload struct {
	AltVersions      int  `json:"altVersions"`
	StemsExport      int  `json:"stemsExport"`
	StemsExportFree  bool `json:"stemsExportFree"`
	MultitrackExport int  `json:"multitrackExport"`
	USBMedia         int  `json:"usbMedia"`
	Total            int  `json:"total"`
}

// RushPayload is null when no rush turnaround is requested.
type RushPayload struct {
	Option RushOption `json:"option"`
	Price  int        `json:"price"`
}

// SessionBookingRequest is the record-only submission variant.
type SessionBookingRequest struct {
	Contact     ContactInfo `json:"contact"`
	BookingPath BookingPath `json:"bookingPath"`
	SessionMode SessionMode `json:"sessionMode"`

	// Anti-abuse fields.
	Honeypot     string `json:"honeypot"`
	FormLoadTime int64  `json:"formLoadTime"` // Unix millis of form open

	Session        SessionPayload         `json:"session"`
	PostProduction *PostProductionPayload `json:"postProduction"`
	Deliverables   DeliverablesPayload    `json:"deliverables"`
	Rush           *RushPayload           `json:"rush"`
	Totals         Totals                 `json:"totals"`
	BundleSavings  int                    `json:"bundleSavings"`
}

// InquiryContact is the reduced contact block of a project inquiry.
type InquiryContact struct {
	ArtistName string `json:"artistName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// InquiryProject is the project block of a project inquiry.
type InquiryProject struct {
	Type             string   `json:"type"`
	Genres           []string `json:"genres"`
	HasBeats         string   `json:"hasBeats"`
	ReferenceArtists string   `json:"referenceArtists"`
	Vision           string   `json:"vision"`
}

// ProjectInquiryRequest is the full-project submission variant,
// tagged with type "project-inquiry".
type ProjectInquiryRequest struct {
	Type        string      `json:"type"`
	BookingPath BookingPath `json:"bookingPath"`

	Honeypot     string `json:"honeypot"`
	FormLoadTime int64  `json:"formLoadTime"`

	Contact  InquiryContact `json:"contact"`
	Project  InquiryProject `json:"project"`
	Timeline string         `json:"timeline"`
	Budget   string         `json:"budget"`
}
