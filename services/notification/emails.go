package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"alliancewav/models"
)

var projectTypeLabels = map[string]string{
	"single": "Single",
	"ep":     "EP (2-5 songs)",
	"album":  "Album (6+ songs)",
	"other":  "Other",
}

var timelineLabels = map[string]string{
	"asap":      "ASAP",
	"1month":    "Within 1 month",
	"2-3months": "2-3 months",
	"flexible":  "Flexible",
}

var budgetLabels = map[string]string{
	"under1k": "Under $1,000",
	"1k-3k":   "$1,000 - $3,000",
	"3k-5k":   "$3,000 - $5,000",
	"5k-10k":  "$5,000 - $10,000",
	"10k+":    "$10,000+",
}

var hasBeatsLabels = map[string]string{
	"yes":             "Has their own beats",
	"no":              "Needs beats",
	"need-production": "Needs full production",
}

func labelOr(labels map[string]string, key, fallback string) string {
	if v, ok := labels[key]; ok {
		return v
	}
	if key != "" {
		return key
	}
	return fallback
}

// formatBookingDate renders a YYYY-MM-DD date as a full human date. An empty
// or unparseable value stays readable rather than failing the email.
func formatBookingDate(dateStr string) string {
	if dateStr == "" {
		return "Not specified"
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("Monday, January 2, 2006")
}

// formatBookingTime renders an HH:MM time in 12-hour form.
func formatBookingTime(timeStr string) string {
	if timeStr == "" {
		return "Flexible"
	}
	t, err := time.Parse("15:04", timeStr)
	if err != nil {
		return timeStr
	}
	return t.Format("3:04 PM")
}

func firstName(full string) string {
	if i := strings.IndexByte(strings.TrimSpace(full), ' '); i > 0 {
		return strings.TrimSpace(full)[:i]
	}
	return strings.TrimSpace(full)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// lineItem is one row in an email breakdown.
type lineItem struct {
	Name  string
	Price string
	Note  string
}

func cad(amount int) string {
	return fmt.Sprintf("CA$%d", amount)
}

// sessionLines renders the hourly session breakdown.
func sessionLines(req models.SessionBookingRequest) []lineItem {
	s := req.Session
	items := []lineItem{
		{Name: fmt.Sprintf("Studio Workspace (%d hr%s)", s.Hours, plural(s.Hours)), Price: cad(s.Hours * 35)},
	}
	if s.IncludeEngineer {
		items = append(items, lineItem{Name: fmt.Sprintf("Recording Engineer (%d hr%s)", s.Hours, plural(s.Hours)), Price: cad(s.Hours * 23)})
	}
	if s.IncludeProducer {
		hours := s.ProducerHours
		if hours == 0 {
			hours = s.Hours
		}
		items = append(items, lineItem{Name: fmt.Sprintf("Session Producer (%d hr%s)", hours, plural(hours)), Price: cad(hours * 27)})
	}
	if s.IsAfterHours {
		count := s.AfterHoursCount
		if count == 0 {
			count = 1
		}
		items = append(items, lineItem{Name: fmt.Sprintf("After-Hours Premium (%d hr%s)", count, plural(count)), Price: "+" + cad(count*5)})
	}
	return items
}

// postLines renders the chosen post-production services, with waived vocal
// work folded into the service that includes it.
func postLines(post *models.PostProductionPayload) []lineItem {
	if post == nil {
		return nil
	}
	var items []lineItem
	if post.MixMasterBundle.Qty > 0 {
		items = append(items, lineItem{
			Name:  "Mix + Master Bundle",
			Price: cad(post.MixMasterBundle.Qty * post.MixMasterBundle.Price),
			Note:  "Includes vocal tuning, editing, 5 revisions, stems",
		})
	}
	if post.Mixing.Qty > 0 {
		items = append(items, lineItem{
			Name:  "Mixing",
			Price: cad(post.Mixing.Qty * post.Mixing.Price),
			Note:  "Includes vocal tuning, 2 revisions",
		})
	}
	if post.Mastering.Qty > 0 {
		items = append(items, lineItem{Name: "Mastering", Price: cad(post.Mastering.Qty * post.Mastering.Price)})
	}
	if paid := post.VocalTuning.Qty - post.VocalTuning.FreeQty; paid > 0 {
		items = append(items, lineItem{Name: "Vocal Tuning", Price: cad(paid * post.VocalTuning.Price)})
	}
	if paid := post.VocalEditing.Qty - post.VocalEditing.FreeQty; paid > 0 {
		items = append(items, lineItem{Name: "Vocal Editing", Price: cad(paid * post.VocalEditing.Price)})
	}
	return items
}

func deliverableLines(d models.DeliverablesPayload) []lineItem {
	var items []lineItem
	if d.AltVersions > 0 {
		items = append(items, lineItem{Name: "Alt Versions Pack", Price: cad(d.AltVersions)})
	}
	if d.StemsExportFree {
		items = append(items, lineItem{Name: "Stems Export", Price: "FREE", Note: "Included with bundle"})
	} else if d.StemsExport > 0 {
		items = append(items, lineItem{Name: "Stems Export", Price: cad(d.StemsExport)})
	}
	if d.MultitrackExport > 0 {
		items = append(items, lineItem{Name: "Multitrack Export", Price: cad(d.MultitrackExport)})
	}
	if d.USBMedia > 0 {
		items = append(items, lineItem{Name: "USB Media", Price: cad(d.USBMedia)})
	}
	return items
}

func rushLabel(option models.RushOption) string {
	if option == models.Rush24 {
		return "24-Hour Rush Turnaround"
	}
	return "48-Hour Rush Turnaround"
}

type bookingEmailData struct {
	Contact       models.ContactInfo
	SessionLabel  string
	ModeRecording bool
	FirstName     string
	Date          string
	Time          string
	Hours         int
	HoursPlural   string
	SessionItems  []lineItem
	PostItems     []lineItem
	DelivItems    []lineItem
	RushLabel     string
	RushPrice     string
	Totals        models.Totals
	BundleSavings int
	SubmittedAt   string
}

func newBookingEmailData(req models.SessionBookingRequest) bookingEmailData {
	label := "Recording Session"
	if req.SessionMode == models.ModeRental {
		label = "Studio Rental"
	}
	data := bookingEmailData{
		Contact:       req.Contact,
		SessionLabel:  label,
		ModeRecording: req.SessionMode == models.ModeRecording,
		FirstName:     firstName(req.Contact.Name),
		Date:          formatBookingDate(req.Contact.PreferredDate),
		Time:          formatBookingTime(req.Contact.PreferredTime),
		Hours:         req.Session.Hours,
		HoursPlural:   plural(req.Session.Hours),
		SessionItems:  sessionLines(req),
		PostItems:     postLines(req.PostProduction),
		DelivItems:    deliverableLines(req.Deliverables),
		Totals:        req.Totals,
		BundleSavings: req.BundleSavings,
		SubmittedAt:   time.Now().Format("January 2, 2006 3:04 PM"),
	}
	if req.Rush != nil {
		data.RushLabel = rushLabel(req.Rush.Option)
		data.RushPrice = "+" + cad(req.Rush.Price)
	}
	return data
}

var studioBookingTmpl = template.Must(template.New("studioBooking").Parse(`
<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;">
<div style="max-width:600px;margin:0 auto;padding:32px 16px;">
  <div style="background-color:#18181b;border-radius:12px 12px 0 0;padding:28px 24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:20px;">New Session Request</h1>
    <p style="color:#a1a1aa;margin:8px 0 0 0;font-size:13px;">{{.SubmittedAt}}</p>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;text-align:center;">
    <span style="background-color:#fef3c7;color:#92400e;padding:6px 14px;border-radius:6px;font-size:12px;font-weight:600;text-transform:uppercase;">{{.SessionLabel}}</span>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Client Information</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      <tr><td style="padding:6px 0;color:#71717a;width:110px;">Name</td><td style="color:#18181b;font-weight:600;">{{.Contact.Name}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Email</td><td><a href="mailto:{{.Contact.Email}}" style="color:#b45309;">{{.Contact.Email}}</a></td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Phone</td><td><a href="tel:{{.Contact.Phone}}" style="color:#b45309;">{{.Contact.Phone}}</a></td></tr>
      {{if .Contact.Instagram}}<tr><td style="padding:6px 0;color:#71717a;">Instagram</td><td style="color:#18181b;">{{.Contact.Instagram}}</td></tr>{{end}}
      {{if .Contact.ReferenceURL}}<tr><td style="padding:6px 0;color:#71717a;">Reference</td><td><a href="{{.Contact.ReferenceURL}}" style="color:#b45309;">{{.Contact.ReferenceURL}}</a></td></tr>{{end}}
    </table>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Session Details</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      <tr><td style="padding:6px 0;color:#71717a;">Date</td><td style="color:#18181b;font-weight:600;text-align:right;">{{.Date}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Time</td><td style="color:#18181b;text-align:right;">{{.Time}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Duration</td><td style="color:#18181b;font-weight:600;text-align:right;">{{.Hours}} hour{{.HoursPlural}}</td></tr>
    </table>
    <table style="width:100%;border-collapse:collapse;font-size:13px;margin-top:12px;background-color:#f4f4f5;border-radius:8px;">
      {{range .SessionItems}}<tr><td style="padding:4px 12px;color:#71717a;">{{.Name}}</td><td style="padding:4px 12px;color:#18181b;text-align:right;">{{.Price}}</td></tr>{{end}}
      <tr><td style="padding:8px 12px;color:#71717a;border-top:1px solid #e4e4e7;">Session Subtotal</td><td style="padding:8px 12px;color:#18181b;font-weight:700;text-align:right;border-top:1px solid #e4e4e7;">CA${{.Totals.Session}}</td></tr>
    </table>
  </div>
  {{if .PostItems}}
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Post-Production</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      {{range .PostItems}}<tr><td style="padding:6px 0;color:#3f3f46;">{{.Name}}{{if .Note}}<br><span style="color:#71717a;font-size:12px;">{{.Note}}</span>{{end}}</td><td style="color:#18181b;text-align:right;vertical-align:top;">{{.Price}}</td></tr>{{end}}
    </table>
    {{if gt .BundleSavings 0}}<p style="color:#15803d;font-size:13px;margin:12px 0 0 0;">Bundle savings: CA${{.BundleSavings}}</p>{{end}}
    <p style="color:#71717a;font-size:14px;margin:12px 0 0 0;">Post-Production Subtotal: <strong style="color:#18181b;">CA${{.Totals.Post}}</strong></p>
  </div>
  {{end}}
  {{if .DelivItems}}
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Deliverables</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      {{range .DelivItems}}<tr><td style="padding:6px 0;color:#3f3f46;">{{.Name}}{{if .Note}}<br><span style="color:#71717a;font-size:12px;">{{.Note}}</span>{{end}}</td><td style="color:#18181b;text-align:right;vertical-align:top;">{{.Price}}</td></tr>{{end}}
    </table>
    <p style="color:#71717a;font-size:14px;margin:12px 0 0 0;">Deliverables Subtotal: <strong style="color:#18181b;">CA${{.Totals.Deliverables}}</strong></p>
  </div>
  {{end}}
  {{if .RushLabel}}
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <div style="background-color:#fef3c7;border-radius:8px;padding:16px;">
      <p style="color:#92400e;margin:0;font-size:14px;font-weight:600;">{{.RushLabel}}</p>
      <p style="color:#b45309;margin:4px 0 0 0;font-size:14px;">{{.RushPrice}}</p>
    </div>
  </div>
  {{end}}
  <div style="background-color:#18181b;border-radius:0 0 12px 12px;padding:24px;">
    <table style="width:100%;"><tr>
      <td style="color:#a1a1aa;font-size:13px;text-transform:uppercase;">Estimated Total</td>
      <td style="color:#ffffff;font-size:28px;font-weight:700;text-align:right;">CA${{.Totals.Grand}}</td>
    </tr></table>
  </div>
  {{if .Contact.ProjectDescription}}
  <div style="background-color:#ffffff;border-radius:12px;padding:24px;margin-top:16px;">
    <h2 style="margin:0 0 12px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Project Description</h2>
    <p style="color:#3f3f46;margin:0;font-size:14px;line-height:1.6;">{{.Contact.ProjectDescription}}</p>
  </div>
  {{end}}
  {{if .Contact.AdditionalNotes}}
  <div style="background-color:#ffffff;border-radius:12px;padding:24px;margin-top:16px;">
    <h2 style="margin:0 0 12px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Additional Notes</h2>
    <p style="color:#3f3f46;margin:0;font-size:14px;line-height:1.6;">{{.Contact.AdditionalNotes}}</p>
  </div>
  {{end}}
  <div style="text-align:center;padding:28px 0 12px 0;">
    <p style="color:#71717a;font-size:12px;margin:0;">Alliance Productions Records Inc.</p>
    <p style="color:#a1a1aa;font-size:11px;margin:6px 0 0 0;">Montreal, QC</p>
  </div>
</div>
</body>
</html>
`))

var clientBookingTmpl = template.Must(template.New("clientBooking").Parse(`
<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;">
<div style="max-width:600px;margin:0 auto;padding:32px 16px;">
  <div style="background-color:#18181b;border-radius:12px 12px 0 0;padding:28px 24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:20px;">Request Received</h1>
    <p style="color:#a1a1aa;margin:8px 0 0 0;font-size:13px;">Thank you for choosing Alliance Productions</p>
  </div>
  <div style="background-color:#ffffff;padding:28px 24px;border-bottom:1px solid #e4e4e7;">
    <p style="color:#18181b;font-size:16px;margin:0 0 12px 0;font-weight:500;">Hey {{.FirstName}},</p>
    <p style="color:#52525b;margin:0;line-height:1.6;font-size:14px;">We've received your {{if .ModeRecording}}session{{else}}studio rental{{end}} request. Our team will review your booking and get back to you within <strong style="color:#18181b;">24 hours</strong> to confirm availability.</p>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Your {{if .ModeRecording}}Session{{else}}Rental{{end}} Summary</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;background-color:#f9fafb;border-radius:8px;">
      <tr><td style="padding:6px 12px;color:#71717a;">Date</td><td style="padding:6px 12px;color:#18181b;font-weight:600;text-align:right;">{{.Date}}</td></tr>
      <tr><td style="padding:6px 12px;color:#71717a;">Time</td><td style="padding:6px 12px;color:#18181b;text-align:right;">{{.Time}}</td></tr>
      <tr><td style="padding:6px 12px;color:#71717a;">Duration</td><td style="padding:6px 12px;color:#18181b;text-align:right;">{{.Hours}} hour{{.HoursPlural}}</td></tr>
    </table>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Pricing Breakdown</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      {{range .SessionItems}}<tr><td style="padding:8px 0;color:#18181b;border-bottom:1px solid #f4f4f5;">{{.Name}}</td><td style="padding:8px 0;color:#18181b;font-weight:600;text-align:right;border-bottom:1px solid #f4f4f5;white-space:nowrap;">{{.Price}}</td></tr>{{end}}
      {{range .PostItems}}<tr><td style="padding:8px 0;color:#18181b;border-bottom:1px solid #f4f4f5;">{{.Name}}{{if .Note}}<br><span style="color:#71717a;font-size:12px;">{{.Note}}</span>{{end}}</td><td style="padding:8px 0;color:#18181b;font-weight:600;text-align:right;border-bottom:1px solid #f4f4f5;white-space:nowrap;">{{.Price}}</td></tr>{{end}}
      {{range .DelivItems}}<tr><td style="padding:8px 0;color:#18181b;border-bottom:1px solid #f4f4f5;">{{.Name}}{{if .Note}}<br><span style="color:#71717a;font-size:12px;">{{.Note}}</span>{{end}}</td><td style="padding:8px 0;{{if eq .Price "FREE"}}color:#15803d;{{else}}color:#18181b;{{end}}font-weight:600;text-align:right;border-bottom:1px solid #f4f4f5;white-space:nowrap;">{{.Price}}</td></tr>{{end}}
      {{if .RushLabel}}<tr><td style="padding:8px 0;color:#18181b;">{{.RushLabel}}</td><td style="padding:8px 0;color:#18181b;font-weight:600;text-align:right;white-space:nowrap;">{{.RushPrice}}</td></tr>{{end}}
    </table>
    {{if gt .BundleSavings 0}}
    <div style="margin-top:16px;padding:12px 16px;background-color:#f0fdf4;border-radius:8px;">
      <p style="color:#15803d;margin:0;font-size:13px;font-weight:600;">You're saving CA${{.BundleSavings}} with the bundle</p>
    </div>
    {{end}}
  </div>
  <div style="background-color:#18181b;padding:24px;">
    <table style="width:100%;"><tr>
      <td style="color:#a1a1aa;font-size:13px;text-transform:uppercase;">Estimated Total</td>
      <td style="color:#ffffff;font-size:28px;font-weight:700;text-align:right;">CA${{.Totals.Grand}}</td>
    </tr></table>
    <p style="color:#71717a;margin:8px 0 0 0;font-size:12px;text-align:right;">Final invoice may vary based on session details</p>
  </div>
  <div style="background-color:#ffffff;border-radius:12px;padding:24px;margin-top:16px;">
    <h2 style="margin:0 0 16px 0;font-size:15px;color:#18181b;">What Happens Next</h2>
    <p style="color:#52525b;font-size:14px;margin:0 0 10px 0;">1. We'll review your request and check availability</p>
    <p style="color:#52525b;font-size:14px;margin:0 0 10px 0;">2. You'll receive a confirmation with final details</p>
    <p style="color:#52525b;font-size:14px;margin:0;">3. Show up, create, and let's make it happen</p>
  </div>
  <div style="background-color:#ffffff;border-radius:12px;padding:24px;margin-top:16px;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Studio Policies</h2>
    <table style="width:100%;border-collapse:collapse;font-size:13px;">
      <tr><td style="padding:6px 0;color:#3f3f46;">After-Hours Premium (outside 11am-10pm)</td><td style="color:#b45309;text-align:right;font-weight:600;">+CA$5/hr</td></tr>
      <tr><td style="padding:6px 0;color:#3f3f46;">Overtime beyond booked time</td><td style="color:#dc2626;text-align:right;font-weight:600;">CA$35 / 30 min</td></tr>
      <tr><td style="padding:6px 0;color:#3f3f46;">Late arrival (30+ min) / no-show</td><td style="color:#dc2626;text-align:right;font-weight:600;">CA$60</td></tr>
    </table>
    <p style="color:#52525b;font-size:13px;margin:16px 0 0 0;line-height:1.5;">New clients pay a refundable deposit to secure their booking, applied as credit toward the final invoice. Payment is due upon receipt; your time is reserved once payment is received.</p>
  </div>
  <div style="background-color:#ffffff;border-radius:12px;padding:24px;margin-top:16px;text-align:center;">
    <p style="color:#52525b;margin:0 0 12px 0;font-size:14px;">Questions? Reach out anytime</p>
    <a href="mailto:contact@allianceproductions.ca" style="color:#18181b;font-weight:600;font-size:14px;">contact@allianceproductions.ca</a>
  </div>
  <div style="text-align:center;padding:28px 0 12px 0;">
    <p style="color:#71717a;font-size:12px;margin:0;">Alliance Productions Records Inc.</p>
    <p style="color:#a1a1aa;font-size:11px;margin:6px 0 0 0;">Montreal, QC</p>
  </div>
</div>
</body>
</html>
`))

type inquiryEmailData struct {
	Contact     models.InquiryContact
	FirstName   string
	ProjectType string
	Genres      string
	HasBeats    string
	References  string
	Vision      string
	Timeline    string
	Budget      string
	SubmittedAt string
}

func newInquiryEmailData(req models.ProjectInquiryRequest) inquiryEmailData {
	genres := "Not specified"
	if len(req.Project.Genres) > 0 {
		genres = strings.Join(req.Project.Genres, ", ")
	}
	return inquiryEmailData{
		Contact:     req.Contact,
		FirstName:   firstName(req.Contact.ArtistName),
		ProjectType: labelOr(projectTypeLabels, req.Project.Type, "Not specified"),
		Genres:      genres,
		HasBeats:    labelOr(hasBeatsLabels, req.Project.HasBeats, "Not specified"),
		References:  req.Project.ReferenceArtists,
		Vision:      req.Project.Vision,
		Timeline:    labelOr(timelineLabels, req.Timeline, "Flexible"),
		Budget:      labelOr(budgetLabels, req.Budget, "Not specified"),
		SubmittedAt: time.Now().Format("January 2, 2006 3:04 PM"),
	}
}

var studioInquiryTmpl = template.Must(template.New("studioInquiry").Parse(`
<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;">
<div style="max-width:600px;margin:0 auto;padding:32px 16px;">
  <div style="background-color:#7c3aed;border-radius:12px 12px 0 0;padding:28px 24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:20px;">New Project Inquiry</h1>
    <p style="color:#e9d5ff;margin:8px 0 0 0;font-size:13px;">{{.SubmittedAt}}</p>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <span style="background-color:#f3e8ff;color:#7c3aed;padding:6px 14px;border-radius:6px;font-size:12px;font-weight:600;text-transform:uppercase;">High-Ticket Lead</span>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Contact Information</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      <tr><td style="padding:6px 0;color:#71717a;width:130px;">Artist/Project</td><td style="color:#18181b;font-weight:600;">{{.Contact.ArtistName}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Email</td><td><a href="mailto:{{.Contact.Email}}" style="color:#7c3aed;">{{.Contact.Email}}</a></td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Phone</td><td><a href="tel:{{.Contact.Phone}}" style="color:#7c3aed;">{{.Contact.Phone}}</a></td></tr>
    </table>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Project Details</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      <tr><td style="padding:6px 0;color:#71717a;width:130px;">Project Type</td><td style="color:#18181b;font-weight:600;">{{.ProjectType}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Genres</td><td style="color:#18181b;">{{.Genres}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Beats/Production</td><td style="color:#18181b;">{{.HasBeats}}</td></tr>
      {{if .References}}<tr><td style="padding:6px 0;color:#71717a;">Reference Artists</td><td style="color:#18181b;">{{.References}}</td></tr>{{end}}
      {{if .Vision}}<tr><td style="padding:6px 0;color:#71717a;">Vision</td><td style="color:#18181b;">{{.Vision}}</td></tr>{{end}}
    </table>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Timeline &amp; Budget</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;">
      <tr><td style="padding:6px 0;color:#71717a;width:130px;">Timeline</td><td style="color:#18181b;font-weight:600;">{{.Timeline}}</td></tr>
      <tr><td style="padding:6px 0;color:#71717a;">Budget Range</td><td style="color:#7c3aed;font-weight:600;">{{.Budget}}</td></tr>
    </table>
  </div>
  <div style="background-color:#18181b;border-radius:0 0 12px 12px;padding:24px;text-align:center;">
    <p style="color:#a1a1aa;margin:0;font-size:13px;">Reply to this email to respond directly to the client</p>
  </div>
</div>
</body>
</html>
`))

var clientInquiryTmpl = template.Must(template.New("clientInquiry").Parse(`
<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background-color:#f4f4f5;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;">
<div style="max-width:600px;margin:0 auto;padding:32px 16px;">
  <div style="background-color:#18181b;border-radius:12px 12px 0 0;padding:28px 24px;text-align:center;">
    <h1 style="color:#ffffff;margin:0;font-size:20px;">Inquiry Received</h1>
    <p style="color:#a1a1aa;margin:8px 0 0 0;font-size:13px;">Thank you for reaching out</p>
  </div>
  <div style="background-color:#ffffff;padding:28px 24px;border-bottom:1px solid #e4e4e7;">
    <p style="color:#18181b;font-size:16px;margin:0 0 12px 0;font-weight:500;">Hey {{.FirstName}},</p>
    <p style="color:#52525b;margin:0;line-height:1.6;font-size:14px;">We've received your project inquiry and we're excited to learn more about your vision. Our team will review your submission and get back to you within <strong style="color:#18181b;">24-48 hours</strong> with a custom quote.</p>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:13px;text-transform:uppercase;color:#18181b;">Your Inquiry Summary</h2>
    <table style="width:100%;border-collapse:collapse;font-size:14px;background-color:#f9fafb;border-radius:8px;">
      <tr><td style="padding:6px 12px;color:#71717a;">Project Type</td><td style="padding:6px 12px;color:#18181b;font-weight:600;text-align:right;">{{.ProjectType}}</td></tr>
      <tr><td style="padding:6px 12px;color:#71717a;">Genres</td><td style="padding:6px 12px;color:#18181b;text-align:right;">{{.Genres}}</td></tr>
      <tr><td style="padding:6px 12px;color:#71717a;">Timeline</td><td style="padding:6px 12px;color:#18181b;text-align:right;">{{.Timeline}}</td></tr>
      <tr><td style="padding:6px 12px;color:#71717a;">Budget Range</td><td style="padding:6px 12px;color:#18181b;text-align:right;">{{.Budget}}</td></tr>
    </table>
  </div>
  <div style="background-color:#ffffff;padding:24px;border-bottom:1px solid #e4e4e7;">
    <h2 style="margin:0 0 16px 0;font-size:15px;color:#18181b;">What Happens Next</h2>
    <p style="color:#52525b;font-size:14px;margin:0 0 10px 0;">1. We review your project details and requirements</p>
    <p style="color:#52525b;font-size:14px;margin:0 0 10px 0;">2. You'll receive a custom quote tailored to your vision</p>
    <p style="color:#52525b;font-size:14px;margin:0;">3. We'll schedule a call to discuss your project in detail</p>
  </div>
  <div style="background-color:#ffffff;border-radius:0 0 12px 12px;padding:24px;text-align:center;">
    <p style="color:#52525b;margin:0 0 12px 0;font-size:14px;">Questions? Reach out anytime</p>
    <a href="mailto:contact@allianceproductions.ca" style="color:#18181b;font-weight:600;font-size:14px;">contact@allianceproductions.ca</a>
  </div>
  <div style="text-align:center;padding:28px 0 12px 0;">
    <p style="color:#71717a;font-size:12px;margin:0;">Alliance Productions Records Inc.</p>
    <p style="color:#a1a1aa;font-size:11px;margin:6px 0 0 0;">Montreal, QC</p>
  </div>
</div>
</body>
</html>
`))

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

// StudioBookingEmail builds the internal notification for a session booking.
func StudioBookingEmail(req models.SessionBookingRequest) (subject, html string, err error) {
	subject = fmt.Sprintf("New Session Request — %s (%s)", req.Contact.Name, formatBookingDate(req.Contact.PreferredDate))
	html, err = render(studioBookingTmpl, newBookingEmailData(req))
	return subject, html, err
}

// ClientBookingEmail builds the confirmation sent back to the submitter.
func ClientBookingEmail(req models.SessionBookingRequest) (subject, html string, err error) {
	subject = "Your Session Request — Alliance Productions"
	html, err = render(clientBookingTmpl, newBookingEmailData(req))
	return subject, html, err
}

// StudioInquiryEmail builds the internal notification for a project inquiry.
func StudioInquiryEmail(req models.ProjectInquiryRequest) (subject, html string, err error) {
	budget := labelOr(budgetLabels, req.Budget, "Custom Quote")
	subject = fmt.Sprintf("Project Inquiry — %s (%s)", req.Contact.ArtistName, budget)
	html, err = render(studioInquiryTmpl, newInquiryEmailData(req))
	return subject, html, err
}

// ClientInquiryEmail builds the confirmation sent back to the inquirer.
func ClientInquiryEmail(req models.ProjectInquiryRequest) (subject, html string, err error) {
	subject = "Your Project Inquiry — Alliance Productions"
	html, err = render(clientInquiryTmpl, newInquiryEmailData(req))
	return subject, html, err
}
