package flow

import (
	"context"

	"alliancewav/models"
	"alliancewav/services/quote"

	"go.uber.org/zap"
)

// PathChoice is the option picked on the first wizard step. The rental
// shortcut is sugar for record-only with a one-hour, staff-free session.
type PathChoice string

const (
	ChooseRecordOnly     PathChoice = "record-only"
	ChooseFullProject    PathChoice = "full-project"
	ChooseRentalShortcut PathChoice = "rental-shortcut"
)

// Controller drives one booking flow instance: it owns the wizard state,
// enforces the selection invariants on every mutation, and persists the
// state through its StateStore once autosave is enabled.
//
// Initialization is two-phase: Restore must run before EnableAutosave so a
// fresh empty state can never overwrite state that is about to be restored.
type Controller struct {
	store    StateStore
	state    models.BookingState
	hours    quote.BusinessHours
	autosave bool
	logger   *zap.Logger
}

// NewController returns a controller with fresh default state. Call Restore
// and EnableAutosave before applying mutations.
func NewController(store StateStore, flowID string, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.L()
	}
	return &Controller{
		store:  store,
		state:  models.NewBookingState(flowID),
		hours:  quote.DefaultBusinessHours(),
		logger: logger,
	}
}

// NewControllerFromState resumes a controller around already-loaded state,
// sanitizing it first. Autosave starts enabled.
func NewControllerFromState(store StateStore, state models.BookingState, logger *zap.Logger) *Controller {
	c := NewController(store, state.FlowID, logger)
	c.adoptRestored(state)
	c.autosave = true
	return c
}

// Restore loads previously persisted state for this flow, validating it
// against the same invariants as live input. A missing or unparseable
// payload leaves the fresh defaults in place; individual out-of-range
// values fall back to their defaults.
func (c *Controller) Restore(ctx context.Context) error {
	saved, err := c.store.Load(ctx, c.state.FlowID)
	if err != nil {
		return err
	}
	if saved == nil {
		return nil
	}
	c.adoptRestored(*saved)
	return nil
}

// EnableAutosave turns on persistence after every mutation. Must follow
// Restore.
func (c *Controller) EnableAutosave() {
	c.autosave = true
}

// State returns a copy of the current wizard state.
func (c *Controller) State() models.BookingState {
	return c.state
}

// Quote recomputes the derived totals and bundle savings from the current
// selections. Never cached, never mutated directly.
func (c *Controller) Quote() (models.Totals, int) {
	afterHours := quote.AfterHoursForBooking(
		c.hours,
		c.state.Contact.PreferredDate,
		c.state.Contact.PreferredTime,
		c.state.Session.Hours,
	)
	totals := quote.ComputeTotals(c.state.Session, c.state.Post, c.state.Deliv, c.state.Rush, afterHours)
	return totals, quote.BundleSavings(c.state.Post)
}

// ChoosePath performs the PathSelect -> Configure transition. The path is
// immutable once chosen: changing it requires going Back to path selection
// first.
func (c *Controller) ChoosePath(ctx context.Context, choice PathChoice) error {
	if c.state.Step != models.StepPathSelect {
		return ErrInvalidTransition
	}
	switch choice {
	case ChooseRecordOnly:
		c.state.Path = models.PathRecordOnly
	case ChooseFullProject:
		c.state.Path = models.PathFullProject
	case ChooseRentalShortcut:
		c.state.Path = models.PathRecordOnly
		c.state.Session.Hours = 1
		c.state.Session.IncludeEngineer = false
		c.state.Session.IncludeProducer = false
	default:
		return ErrPathRequired
	}
	c.state.Step = models.StepConfigure
	c.applyCascades()
	return c.persist(ctx)
}

// SetSessionHours changes the session duration. Selecting one hour while an
// engineer is included is a destructive change to unrelated selections, so
// it is not applied: the flow suspends in a confirmation sub-state
// (hours held at two) until ConfirmRental or KeepRecording resolves it.
func (c *Controller) SetSessionHours(ctx context.Context, hours int) error {
	if !models.IsValidSessionHours(hours) {
		return ErrInvalidHours
	}
	if hours == 1 && c.state.Session.IncludeEngineer {
		c.state.PendingRentalConfirm = true
		c.state.Session.Hours = 2
		c.applyCascades()
		return c.persist(ctx)
	}
	c.state.Session.Hours = hours
	c.applyCascades()
	return c.persist(ctx)
}

// ConfirmRental accepts the pending one-hour selection: the session drops to
// one hour and the engineer and producer are cleared, which in turn clears
// post-production and deliverables.
func (c *Controller) ConfirmRental(ctx context.Context) error {
	c.state.PendingRentalConfirm = false
	c.state.Session.Hours = 1
	c.state.Session.IncludeEngineer = false
	c.state.Session.IncludeProducer = false
	c.applyCascades()
	return c.persist(ctx)
}

// KeepRecording cancels the pending one-hour selection, reverting to the
// two-hour recording minimum.
func (c *Controller) KeepRecording(ctx context.Context) error {
	c.state.PendingRentalConfirm = false
	c.state.Session.Hours = 2
	c.applyCascades()
	return c.persist(ctx)
}

// SetIncludeEngineer toggles the recording engineer. Enabling staff on a
// one-hour rental bumps the session to the two-hour recording minimum;
// disabling the engineer also drops the producer.
func (c *Controller) SetIncludeEngineer(ctx context.Context, on bool) error {
	c.state.Session.IncludeEngineer = on
	if on && c.state.Session.Hours < 2 {
		c.state.Session.Hours = 2
	}
	c.applyCascades()
	return c.persist(ctx)
}

// SetIncludeProducer toggles the session producer, which requires an
// engineer. Enabling defaults the producer hours to the full session,
// floored at two.
func (c *Controller) SetIncludeProducer(ctx context.Context, on bool) error {
	if on && !c.state.Session.IncludeEngineer {
		return ErrProducerRequiresEngineer
	}
	c.state.Session.IncludeProducer = on
	if on && c.state.Session.ProducerHours == 0 {
		c.state.Session.ProducerHours = max(2, c.state.Session.Hours)
	}
	c.applyCascades()
	return c.persist(ctx)
}

// SetProducerHours sets the producer's hours, clamped to [2, sessionHours].
func (c *Controller) SetProducerHours(ctx context.Context, hours int) error {
	c.state.Session.ProducerHours = hours
	c.applyCascades()
	return c.persist(ctx)
}

// SetMixing toggles mixing (recording mode only). Selecting it includes
// vocal tuning at no charge.
func (c *Controller) SetMixing(ctx context.Context, on bool) error {
	return c.setPost(ctx, on, func(p *models.PostProductionSelection, v bool) { p.Mixing = v })
}

// SetMastering toggles mastering (recording mode only).
func (c *Controller) SetMastering(ctx context.Context, on bool) error {
	return c.setPost(ctx, on, func(p *models.PostProductionSelection, v bool) { p.Mastering = v })
}

// SetMixMasterBundle toggles the bundle (recording mode only). Selecting it
// includes vocal tuning, vocal editing and the stems export at no charge.
func (c *Controller) SetMixMasterBundle(ctx context.Context, on bool) error {
	return c.setPost(ctx, on, func(p *models.PostProductionSelection, v bool) { p.MixMasterBundle = v })
}

// SetVocalTuning toggles vocal tuning. While mixing or the bundle is
// selected the service is included and stays on.
func (c *Controller) SetVocalTuning(ctx context.Context, on bool) error {
	return c.setPost(ctx, on, func(p *models.PostProductionSelection, v bool) { p.VocalTuning = v })
}

// SetVocalEditing toggles vocal editing. While the bundle is selected the
// service is included and stays on.
func (c *Controller) SetVocalEditing(ctx context.Context, on bool) error {
	return c.setPost(ctx, on, func(p *models.PostProductionSelection, v bool) { p.VocalEditing = v })
}

func (c *Controller) setPost(ctx context.Context, on bool, set func(*models.PostProductionSelection, bool)) error {
	if on && c.state.Session.Mode() == models.ModeRental {
		return ErrRentalMode
	}
	set(&c.state.Post, on)
	c.applyCascades()
	return c.persist(ctx)
}

// SetAltVersions toggles the alternate versions pack.
func (c *Controller) SetAltVersions(ctx context.Context, on bool) error {
	return c.setDeliverable(ctx, on, func(d *models.DeliverablesSelection, v bool) { d.AltVersions = v })
}

// SetStemsExport toggles the stems export. Free while the bundle is
// selected, in which case it stays on.
func (c *Controller) SetStemsExport(ctx context.Context, on bool) error {
	return c.setDeliverable(ctx, on, func(d *models.DeliverablesSelection, v bool) { d.StemsExport = v })
}

// SetMultitrackExport toggles the multitrack export.
func (c *Controller) SetMultitrackExport(ctx context.Context, on bool) error {
	return c.setDeliverable(ctx, on, func(d *models.DeliverablesSelection, v bool) { d.MultitrackExport = v })
}

// SetUSBMedia toggles delivery on USB media.
func (c *Controller) SetUSBMedia(ctx context.Context, on bool) error {
	return c.setDeliverable(ctx, on, func(d *models.DeliverablesSelection, v bool) { d.USBMedia = v })
}

func (c *Controller) setDeliverable(ctx context.Context, on bool, set func(*models.DeliverablesSelection, bool)) error {
	if on && c.state.Session.Mode() == models.ModeRental {
		return ErrRentalMode
	}
	set(&c.state.Deliv, on)
	c.applyCascades()
	return c.persist(ctx)
}

// SetRush selects the turnaround, which is only offered alongside a mixing
// or mastering service.
func (c *Controller) SetRush(ctx context.Context, opt models.RushOption) error {
	switch opt {
	case models.RushNone, models.Rush48, models.Rush24:
	default:
		return ErrRushUnavailable
	}
	if opt != models.RushNone && !c.state.Post.Any() {
		return ErrRushUnavailable
	}
	c.state.Rush = opt
	c.applyCascades()
	return c.persist(ctx)
}

// SetContact replaces the schedule-and-contact form fields.
func (c *Controller) SetContact(ctx context.Context, info models.ContactInfo) error {
	c.state.Contact = info
	return c.persist(ctx)
}

// SetInquiry replaces the full-project qualification form fields.
func (c *Controller) SetInquiry(ctx context.Context, inquiry models.ProjectInquiry) error {
	c.state.Inquiry = inquiry
	return c.persist(ctx)
}

// Advance moves the wizard forward. Configure has no validation gate; the
// move out of ScheduleContact happens through submission, not here.
func (c *Controller) Advance(ctx context.Context) error {
	switch c.state.Step {
	case models.StepPathSelect:
		return ErrPathRequired
	case models.StepConfigure:
		c.state.Step = models.StepScheduleContact
	default:
		return ErrInvalidTransition
	}
	return c.persist(ctx)
}

// Back moves the wizard backward. Returning to path selection resets the
// chosen path: the path is immutable for the rest of the flow otherwise.
func (c *Controller) Back(ctx context.Context) error {
	switch c.state.Step {
	case models.StepScheduleContact:
		c.state.Step = models.StepConfigure
	case models.StepConfigure:
		c.state.Step = models.StepPathSelect
		c.state.Path = ""
	default:
		return ErrInvalidTransition
	}
	return c.persist(ctx)
}

// BeginSubmit marks the flow as submitting. The step is transient and is
// not persisted, so an interrupted submission resumes at ScheduleContact.
func (c *Controller) BeginSubmit() {
	c.state.Step = models.StepSubmitting
}

// FinishSubmit resolves the Submitting step. Success confirms the flow and
// clears the persisted state so the next open starts fresh; failure returns
// to the contact step with state intact for a retry.
func (c *Controller) FinishSubmit(ctx context.Context, succeeded bool) error {
	if succeeded {
		c.state.Step = models.StepConfirmed
		if err := c.store.Clear(ctx, c.state.FlowID); err != nil {
			c.logger.Warn("Failed to clear booking state after confirmation",
				zap.String("flowId", c.state.FlowID), zap.Error(err))
		}
		return nil
	}
	c.state.Step = models.StepScheduleContact
	return c.persist(ctx)
}

// applyCascades re-establishes the cross-entity invariants after any
// selection change.
func (c *Controller) applyCascades() {
	s := &c.state.Session

	// One-hour sessions are rentals; a producer always needs an engineer.
	if s.Hours == 1 {
		s.IncludeEngineer = false
		s.IncludeProducer = false
	}
	if !s.IncludeEngineer {
		s.IncludeProducer = false
	}
	if s.IncludeProducer {
		if s.ProducerHours < 2 {
			s.ProducerHours = 2
		}
		if s.ProducerHours > s.Hours {
			s.ProducerHours = s.Hours
		}
	}

	// Rental mode locks out post-production and deliverables entirely.
	if s.Mode() == models.ModeRental {
		c.state.Post = models.PostProductionSelection{}
		c.state.Deliv = models.DeliverablesSelection{}
	}

	// Bundle includes tuning, editing and stems; mixing includes tuning.
	if c.state.Post.MixMasterBundle {
		c.state.Post.VocalTuning = true
		c.state.Post.VocalEditing = true
		c.state.Deliv.StemsExport = true
	}
	if c.state.Post.Mixing {
		c.state.Post.VocalTuning = true
	}

	// Rush is only offered with a mixing or mastering service.
	if !c.state.Post.Any() {
		c.state.Rush = models.RushNone
	}
}

// adoptRestored validates a persisted snapshot against the live-input
// invariants before accepting it. Out-of-range values fall back to their
// defaults rather than poisoning the flow.
func (c *Controller) adoptRestored(saved models.BookingState) {
	fresh := models.NewBookingState(c.state.FlowID)

	switch saved.Path {
	case models.PathRecordOnly, models.PathFullProject, "":
	default:
		// Unknown path means the payload predates this schema; discard it.
		c.logger.Warn("Discarding restored booking state with unknown path",
			zap.String("flowId", c.state.FlowID), zap.String("path", string(saved.Path)))
		c.state = fresh
		return
	}

	saved.FlowID = c.state.FlowID
	if !models.IsValidSessionHours(saved.Session.Hours) {
		saved.Session = fresh.Session
	}
	switch saved.Rush {
	case models.RushNone, models.Rush48, models.Rush24:
	default:
		saved.Rush = models.RushNone
	}
	if saved.Step < models.StepPathSelect || saved.Step > models.StepConfirmed {
		saved.Step = fresh.Step
	}
	// Submitting is transient; a flow interrupted mid-submission resumes
	// at the contact step.
	if saved.Step == models.StepSubmitting {
		saved.Step = models.StepScheduleContact
	}
	if saved.Path == "" && saved.Step > models.StepPathSelect {
		saved.Step = models.StepPathSelect
	}
	saved.PendingRentalConfirm = false

	c.state = saved
	c.applyCascades()
}

func (c *Controller) persist(ctx context.Context) error {
	if !c.autosave {
		return nil
	}
	return c.store.Save(ctx, c.state.FlowID, c.state)
}
