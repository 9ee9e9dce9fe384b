package submission

import (
	"context"
	"fmt"
	"time"

	"alliancewav/config"
	"alliancewav/models"
	"alliancewav/services/notification"
	"alliancewav/services/quote"

	"go.uber.org/zap"
)

// SubmissionService processes validated booking and inquiry submissions,
// dispatching the studio and client notification emails.
type SubmissionService interface {
	SubmitSessionBooking(ctx context.Context, req models.SessionBookingRequest) error
	SubmitProjectInquiry(ctx context.Context, req models.ProjectInquiryRequest) error
}

// DefaultSubmissionService is the production implementation.
type DefaultSubmissionService struct {
	Mailer      notification.Mailer
	Logger      *zap.Logger
	StudioEmail string
	Sender      string
	SenderName  string
	ReplyTo     string

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// NewSubmissionService wires the service from app config.
func NewSubmissionService(mailer notification.Mailer, cfg config.Config, logger *zap.Logger) *DefaultSubmissionService {
	return &DefaultSubmissionService{
		Mailer:      mailer,
		Logger:      logger,
		StudioEmail: cfg.StudioEmail,
		Sender:      cfg.MailSender,
		SenderName:  "Alliance Productions",
		ReplyTo:     cfg.MailReplyTo,
	}
}

func (s *DefaultSubmissionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSubmissionService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// SubmitSessionBooking screens, validates and dispatches a record-only
// booking. A silent anti-abuse rejection returns nil without sending mail.
func (s *DefaultSubmissionService) SubmitSessionBooking(ctx context.Context, req models.SessionBookingRequest) error {
	if reason := Screen(req.Honeypot, req.FormLoadTime, s.now()); reason != RejectNone {
		s.logger().Info("Silently rejecting booking submission", zap.String("reason", string(reason)))
		return nil
	}

	if err := ValidateContact(req.Contact, s.now()); err != nil {
		return err
	}

	// Spam content is only screened on otherwise-valid payloads; invalid
	// ones fail loudly above regardless of what they contain.
	if reason := ScreenSpam(req.Contact.Name, req.Contact.ProjectDescription, req.Contact.AdditionalNotes); reason != RejectNone {
		s.logger().Info("Silently rejecting booking submission", zap.String("reason", string(reason)))
		return nil
	}

	// Client-supplied totals are advisory only; everything priced is
	// recomputed from the selections before it reaches an email.
	recomputeSessionRequest(&req)

	studioSubject, studioHTML, err := notification.StudioBookingEmail(req)
	if err != nil {
		return err
	}
	clientSubject, clientHTML, err := notification.ClientBookingEmail(req)
	if err != nil {
		return err
	}

	if err := s.Mailer.Send(ctx, notification.Message{
		FromName: s.SenderName,
		From:     s.Sender,
		To:       s.StudioEmail,
		ReplyTo:  req.Contact.Email,
		Subject:  studioSubject,
		HTML:     studioHTML,
	}); err != nil {
		return fmt.Errorf("failed to notify studio: %w", err)
	}

	if err := s.Mailer.Send(ctx, notification.Message{
		FromName: s.SenderName,
		From:     s.Sender,
		To:       req.Contact.Email,
		ReplyTo:  s.ReplyTo,
		Subject:  clientSubject,
		HTML:     clientHTML,
	}); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	s.logger().Info("Booking submission processed",
		zap.String("email", req.Contact.Email),
		zap.String("date", req.Contact.PreferredDate),
		zap.Int("grandTotal", req.Totals.Grand))
	return nil
}

// SubmitProjectInquiry screens, validates and dispatches a full-project
// inquiry. Inquiries carry no pricing.
func (s *DefaultSubmissionService) SubmitProjectInquiry(ctx context.Context, req models.ProjectInquiryRequest) error {
	if reason := Screen(req.Honeypot, req.FormLoadTime, s.now()); reason != RejectNone {
		s.logger().Info("Silently rejecting project inquiry", zap.String("reason", string(reason)))
		return nil
	}

	if err := ValidateInquiry(req); err != nil {
		return err
	}

	if reason := ScreenSpam(req.Contact.ArtistName, req.Project.ReferenceArtists, req.Project.Vision); reason != RejectNone {
		s.logger().Info("Silently rejecting project inquiry", zap.String("reason", string(reason)))
		return nil
	}

	studioSubject, studioHTML, err := notification.StudioInquiryEmail(req)
	if err != nil {
		return err
	}
	clientSubject, clientHTML, err := notification.ClientInquiryEmail(req)
	if err != nil {
		return err
	}

	if err := s.Mailer.Send(ctx, notification.Message{
		FromName: s.SenderName,
		From:     s.Sender,
		To:       s.StudioEmail,
		ReplyTo:  req.Contact.Email,
		Subject:  studioSubject,
		HTML:     studioHTML,
	}); err != nil {
		return fmt.Errorf("failed to notify studio: %w", err)
	}

	if err := s.Mailer.Send(ctx, notification.Message{
		FromName: s.SenderName,
		From:     s.Sender,
		To:       req.Contact.Email,
		ReplyTo:  s.ReplyTo,
		Subject:  clientSubject,
		HTML:     clientHTML,
	}); err != nil {
		return fmt.Errorf("failed to send confirmation: %w", err)
	}

	s.logger().Info("Project inquiry processed", zap.String("email", req.Contact.Email))
	return nil
}

// recomputeSessionRequest rebuilds every priced field of the request from
// the underlying selections, so tampered client numbers never propagate.
func recomputeSessionRequest(req *models.SessionBookingRequest) {
	session := models.SessionSelection{
		Hours:           req.Session.Hours,
		IncludeEngineer: req.Session.IncludeEngineer,
		IncludeProducer: req.Session.IncludeProducer,
		ProducerHours:   req.Session.ProducerHours,
	}

	var post models.PostProductionSelection
	if req.PostProduction != nil {
		post = models.PostProductionSelection{
			Mixing:          req.PostProduction.Mixing.Qty > 0,
			Mastering:       req.PostProduction.Mastering.Qty > 0,
			MixMasterBundle: req.PostProduction.MixMasterBundle.Qty > 0,
			VocalTuning:     req.PostProduction.VocalTuning.Qty > 0,
			VocalEditing:    req.PostProduction.VocalEditing.Qty > 0,
		}
	}

	deliv := models.DeliverablesSelection{
		AltVersions:      req.Deliverables.AltVersions > 0,
		StemsExport:      req.Deliverables.StemsExport > 0 || req.Deliverables.StemsExportFree,
		MultitrackExport: req.Deliverables.MultitrackExport > 0,
		USBMedia:         req.Deliverables.USBMedia > 0,
	}

	rush := models.RushNone
	if req.Rush != nil {
		rush = req.Rush.Option
	}

	afterHours := quote.AfterHoursForBooking(
		quote.DefaultBusinessHours(),
		req.Contact.PreferredDate,
		req.Contact.PreferredTime,
		session.Hours,
	)

	totals := quote.ComputeTotals(session, post, deliv, rush, afterHours)

	req.SessionMode = session.Mode()
	req.Session.IsAfterHours = afterHours > 0
	req.Session.AfterHoursCount = afterHours
	req.Session.Total = totals.Session
	req.Totals = totals
	req.BundleSavings = quote.BundleSavings(post)

	if session.Mode() == models.ModeRental {
		req.PostProduction = nil
	}
	if req.PostProduction != nil {
		p := req.PostProduction
		p.Mixing.Price = quote.PriceMixing
		p.Mixing.RevisionsIncluded = quote.RevisionsIncludedMixing
		p.Mixing.IncludesTuning = true
		p.Mastering.Price = quote.PriceMastering
		p.MixMasterBundle.Price = quote.PriceMixMasterBundle
		p.MixMasterBundle.RevisionsIncluded = quote.RevisionsIncludedBundle
		p.MixMasterBundle.IncludesTuning = true
		p.MixMasterBundle.IncludesEditing = true
		p.VocalTuning.Price = quote.PriceVocalTuning
		if post.VocalTuning && quote.VocalTuningWaived(post) {
			p.VocalTuning.FreeQty = p.VocalTuning.Qty
		} else {
			p.VocalTuning.FreeQty = 0
		}
		p.VocalEditing.Price = quote.PriceVocalEditing
		if post.VocalEditing && quote.VocalEditingWaived(post) {
			p.VocalEditing.FreeQty = p.VocalEditing.Qty
		} else {
			p.VocalEditing.FreeQty = 0
		}
		p.Total = totals.Post
	}

	stemsWaived := deliv.StemsExport && quote.StemsExportWaived(post)
	req.Deliverables.StemsExportFree = stemsWaived
	if deliv.AltVersions {
		req.Deliverables.AltVersions = quote.PriceAltVersions
	} else {
		req.Deliverables.AltVersions = 0
	}
	if deliv.StemsExport && !stemsWaived {
		req.Deliverables.StemsExport = quote.PriceStemsExport
	} else {
		req.Deliverables.StemsExport = 0
	}
	if deliv.MultitrackExport {
		req.Deliverables.MultitrackExport = quote.PriceMultitrackExport
	} else {
		req.Deliverables.MultitrackExport = 0
	}
	if deliv.USBMedia {
		req.Deliverables.USBMedia = quote.PriceUSBMedia
	} else {
		req.Deliverables.USBMedia = 0
	}
	req.Deliverables.Total = totals.Deliverables

	if rush == models.RushNone || !post.Any() {
		req.Rush = nil
	} else {
		req.Rush = &models.RushPayload{Option: rush, Price: totals.Rush}
	}
}
