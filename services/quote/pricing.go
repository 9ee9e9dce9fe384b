package quote

import "alliancewav/models"

// ComputeTotals derives the priced order summary from the raw selections.
// Pure and deterministic: malformed numeric input is coerced to zero,
// never rejected.
func ComputeTotals(
	session models.SessionSelection,
	post models.PostProductionSelection,
	deliv models.DeliverablesSelection,
	rush models.RushOption,
	afterHoursCount int,
) models.Totals {
	hours := clampNonNegative(session.Hours)
	producerHours := clampNonNegative(session.ProducerHours)
	afterHours := clampNonNegative(afterHoursCount)

	sessionTotal := PriceStudioWorkspace * hours
	if session.IncludeEngineer {
		sessionTotal += PriceRecordingEngineer * hours
	}
	if session.IncludeProducer {
		sessionTotal += PriceProducer * producerHours
	}
	sessionTotal += PriceAfterHoursPremium * afterHours

	postTotal := 0
	if post.Mixing {
		postTotal += PriceMixing
	}
	if post.Mastering {
		postTotal += PriceMastering
	}
	if post.MixMasterBundle {
		postTotal += PriceMixMasterBundle
	}
	// Vocal tuning is waived with mixing or the bundle; vocal editing is
	// waived only with the bundle. The asymmetry is intentional.
	if post.VocalTuning && !VocalTuningWaived(post) {
		postTotal += PriceVocalTuning
	}
	if post.VocalEditing && !VocalEditingWaived(post) {
		postTotal += PriceVocalEditing
	}

	delivTotal := 0
	if deliv.AltVersions {
		delivTotal += PriceAltVersions
	}
	if deliv.StemsExport && !StemsExportWaived(post) {
		delivTotal += PriceStemsExport
	}
	if deliv.MultitrackExport {
		delivTotal += PriceMultitrackExport
	}
	if deliv.USBMedia {
		delivTotal += PriceUSBMedia
	}

	rushTotal := 0
	switch rush {
	case models.Rush48:
		rushTotal = PriceRush48
	case models.Rush24:
		rushTotal = PriceRush24
	}

	return models.Totals{
		Session:      sessionTotal,
		Post:         postTotal,
		Deliverables: delivTotal,
		Rush:         rushTotal,
		Grand:        sessionTotal + postTotal + delivTotal + rushTotal,
	}
}

// VocalTuningWaived reports whether vocal tuning is included at no charge.
func VocalTuningWaived(post models.PostProductionSelection) bool {
	return post.Mixing || post.MixMasterBundle
}

// VocalEditingWaived reports whether vocal editing is included at no charge.
func VocalEditingWaived(post models.PostProductionSelection) bool {
	return post.MixMasterBundle
}

// StemsExportWaived reports whether the stems export fee is covered by the bundle.
func StemsExportWaived(post models.PostProductionSelection) bool {
	return post.MixMasterBundle
}

// BundleSavings reports what the bundle saves versus booking its parts
// individually. Informational only: the bundle's flat price already
// reflects the discount, so this is never subtracted from the totals.
func BundleSavings(post models.PostProductionSelection) int {
	if !post.MixMasterBundle {
		return 0
	}
	individual := PriceMixing + PriceMastering + PriceVocalEditing + PriceStemsExport + extraRevisionCredit
	return individual - PriceMixMasterBundle
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
