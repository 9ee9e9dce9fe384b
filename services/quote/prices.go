package quote

// Pricing constants, CAD.
const (
	PriceStudioWorkspace   = 35 // per hour, always charged
	PriceRecordingEngineer = 23 // per hour
	PriceProducer          = 27 // per producer hour
	PriceAfterHoursPremium = 5  // per after-hours hour

	PriceMixing          = 55
	PriceMastering       = 25
	PriceMixMasterBundle = 100
	PriceVocalTuning     = 60
	PriceVocalEditing    = 50

	PriceAltVersions      = 25
	PriceStemsExport      = 25
	PriceMultitrackExport = 35
	PriceUSBMedia         = 15

	PriceRush48 = 50
	PriceRush24 = 100

	// Per-revision value credited when computing bundle savings.
	extraRevisionCredit = 10
)

// RevisionsIncludedMixing and RevisionsIncludedBundle are advertised with
// the respective services and appear in the itemized emails.
const (
	RevisionsIncludedMixing = 2
	RevisionsIncludedBundle = 5
)
