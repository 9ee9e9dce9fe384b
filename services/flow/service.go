package flow

import (
	"context"
	"fmt"

	"alliancewav/models"
	"alliancewav/services/quote"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submitter dispatches a completed booking or inquiry to the outside world.
// Implemented by the submission service.
type Submitter interface {
	SubmitSessionBooking(ctx context.Context, req models.SessionBookingRequest) error
	SubmitProjectInquiry(ctx context.Context, req models.ProjectInquiryRequest) error
}

// Snapshot is the flow state plus its derived quote, as returned to clients.
type Snapshot struct {
	State         models.BookingState `json:"state"`
	SessionMode   models.SessionMode  `json:"sessionMode"`
	Totals        models.Totals       `json:"totals"`
	BundleSavings int                 `json:"bundleSavings"`
}

// FlowService manages booking flow instances keyed by session-scoped IDs.
type FlowService interface {
	CreateFlow(ctx context.Context) (Snapshot, error)
	GetFlow(ctx context.Context, flowID string) (Snapshot, error)
	ApplyEvent(ctx context.Context, flowID string, ev Event) (Snapshot, error)
	Submit(ctx context.Context, flowID string) (Snapshot, error)
	CancelFlow(ctx context.Context, flowID string) error
}

// DefaultFlowService is the production implementation.
type DefaultFlowService struct {
	Store     StateStore
	Submitter Submitter
	Logger    *zap.Logger
}

func (s *DefaultFlowService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// CreateFlow mints a new flow instance and persists its initial state.
func (s *DefaultFlowService) CreateFlow(ctx context.Context) (Snapshot, error) {
	flowID := uuid.New().String()
	c := NewController(s.Store, flowID, s.logger())
	if err := c.Restore(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("failed to initialize booking flow: %w", err)
	}
	c.EnableAutosave()
	if err := s.Store.Save(ctx, flowID, c.State()); err != nil {
		return Snapshot{}, fmt.Errorf("failed to persist booking flow: %w", err)
	}
	return snapshot(c), nil
}

// GetFlow returns the current state and quote for a flow.
func (s *DefaultFlowService) GetFlow(ctx context.Context, flowID string) (Snapshot, error) {
	c, err := s.resume(ctx, flowID)
	if err != nil {
		return Snapshot{}, err
	}
	return snapshot(c), nil
}

// ApplyEvent applies one mutation to a flow and returns the updated snapshot.
func (s *DefaultFlowService) ApplyEvent(ctx context.Context, flowID string, ev Event) (Snapshot, error) {
	c, err := s.resume(ctx, flowID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := c.ApplyEvent(ctx, ev); err != nil {
		return Snapshot{}, err
	}
	return snapshot(c), nil
}

// Submit validates the flow is at its submission gate and dispatches it.
// Success confirms the flow and clears the stored state; a transport
// failure returns the flow to the contact step with state intact.
func (s *DefaultFlowService) Submit(ctx context.Context, flowID string) (Snapshot, error) {
	c, err := s.resume(ctx, flowID)
	if err != nil {
		return Snapshot{}, err
	}

	state := c.State()
	switch {
	case state.Path == models.PathFullProject && state.Step == models.StepConfigure:
	case state.Path == models.PathRecordOnly && state.Step == models.StepScheduleContact:
	default:
		return Snapshot{}, ErrInvalidTransition
	}

	c.BeginSubmit()
	var submitErr error
	if state.Path == models.PathFullProject {
		submitErr = s.Submitter.SubmitProjectInquiry(ctx, assembleInquiryRequest(state))
	} else {
		submitErr = s.Submitter.SubmitSessionBooking(ctx, assembleSessionRequest(c))
	}

	if err := c.FinishSubmit(ctx, submitErr == nil); err != nil {
		s.logger().Warn("Failed to persist flow after submission", zap.String("flowId", flowID), zap.Error(err))
	}
	if submitErr != nil {
		return snapshot(c), submitErr
	}
	return snapshot(c), nil
}

// CancelFlow discards a flow's stored state.
func (s *DefaultFlowService) CancelFlow(ctx context.Context, flowID string) error {
	return s.Store.Clear(ctx, flowID)
}

func (s *DefaultFlowService) resume(ctx context.Context, flowID string) (*Controller, error) {
	saved, err := s.Store.Load(ctx, flowID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, ErrFlowNotFound
	}
	return NewControllerFromState(s.Store, *saved, s.logger()), nil
}

func snapshot(c *Controller) Snapshot {
	totals, savings := c.Quote()
	state := c.State()
	return Snapshot{
		State:         state,
		SessionMode:   state.Session.Mode(),
		Totals:        totals,
		BundleSavings: savings,
	}
}

// assembleSessionRequest builds the submission payload the same way the
// wizard's submit step does, from the controller's current selections and
// recomputed quote.
func assembleSessionRequest(c *Controller) models.SessionBookingRequest {
	state := c.State()
	totals, savings := c.Quote()
	afterHours := quote.AfterHoursForBooking(
		quote.DefaultBusinessHours(),
		state.Contact.PreferredDate,
		state.Contact.PreferredTime,
		state.Session.Hours,
	)

	producerHours := 0
	if state.Session.IncludeProducer {
		producerHours = state.Session.ProducerHours
	}

	req := models.SessionBookingRequest{
		Contact:     state.Contact,
		BookingPath: state.Path,
		SessionMode: state.Session.Mode(),
		Session: models.SessionPayload{
			Hours:           state.Session.Hours,
			IncludeEngineer: state.Session.IncludeEngineer,
			IncludeProducer: state.Session.IncludeProducer,
			ProducerHours:   producerHours,
			IsAfterHours:    afterHours > 0,
			AfterHoursCount: afterHours,
			Total:           totals.Session,
		},
		Deliverables: models.DeliverablesPayload{
			AltVersions:      chargedAmount(state.Deliv.AltVersions, quote.PriceAltVersions),
			StemsExport:      stemsCharge(state),
			StemsExportFree:  state.Deliv.StemsExport && quote.StemsExportWaived(state.Post),
			MultitrackExport: chargedAmount(state.Deliv.MultitrackExport, quote.PriceMultitrackExport),
			USBMedia:         chargedAmount(state.Deliv.USBMedia, quote.PriceUSBMedia),
			Total:            totals.Deliverables,
		},
		Totals:        totals,
		BundleSavings: savings,
	}

	if state.Session.Mode() == models.ModeRecording {
		req.PostProduction = &models.PostProductionPayload{
			Mixing: models.ServiceLine{
				Qty: boolQty(state.Post.Mixing), Price: quote.PriceMixing,
				RevisionsIncluded: quote.RevisionsIncludedMixing, IncludesTuning: true,
			},
			Mastering: models.ServiceLine{Qty: boolQty(state.Post.Mastering), Price: quote.PriceMastering},
			MixMasterBundle: models.ServiceLine{
				Qty: boolQty(state.Post.MixMasterBundle), Price: quote.PriceMixMasterBundle,
				RevisionsIncluded: quote.RevisionsIncludedBundle, IncludesTuning: true, IncludesEditing: true,
			},
			VocalTuning: models.VocalLine{
				Qty: boolQty(state.Post.VocalTuning), Price: quote.PriceVocalTuning,
				FreeQty: boolQty(state.Post.VocalTuning && quote.VocalTuningWaived(state.Post)),
			},
			VocalEditing: models.VocalLine{
				Qty: boolQty(state.Post.VocalEditing), Price: quote.PriceVocalEditing,
				FreeQty: boolQty(state.Post.VocalEditing && quote.VocalEditingWaived(state.Post)),
			},
			Total: totals.Post,
		}
	}

	if state.Rush != models.RushNone {
		req.Rush = &models.RushPayload{Option: state.Rush, Price: totals.Rush}
	}
	return req
}

func assembleInquiryRequest(state models.BookingState) models.ProjectInquiryRequest {
	return models.ProjectInquiryRequest{
		Type:        "project-inquiry",
		BookingPath: models.PathFullProject,
		Contact: models.InquiryContact{
			ArtistName: state.Inquiry.ArtistName,
			Email:      state.Inquiry.Email,
			Phone:      state.Inquiry.Phone,
		},
		Project: models.InquiryProject{
			Type:             state.Inquiry.ProjectType,
			Genres:           state.Inquiry.Genres,
			HasBeats:         state.Inquiry.HasBeats,
			ReferenceArtists: state.Inquiry.ReferenceArtists,
			Vision:           state.Inquiry.ProjectVision,
		},
		Timeline: state.Inquiry.Timeline,
		Budget:   state.Inquiry.Budget,
	}
}

func boolQty(b bool) int {
	if b {
		return 1
	}
	return 0
}

func chargedAmount(selected bool, price int) int {
	if selected {
		return price
	}
	return 0
}

func stemsCharge(state models.BookingState) int {
	if state.Deliv.StemsExport && !quote.StemsExportWaived(state.Post) {
		return quote.PriceStemsExport
	}
	return 0
}
