package flow

import (
	"context"
	"errors"
	"testing"

	"alliancewav/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSubmitter struct {
	sessions  []models.SessionBookingRequest
	inquiries []models.ProjectInquiryRequest
	err       error
}

func (f *fakeSubmitter) SubmitSessionBooking(ctx context.Context, req models.SessionBookingRequest) error {
	f.sessions = append(f.sessions, req)
	return f.err
}

func (f *fakeSubmitter) SubmitProjectInquiry(ctx context.Context, req models.ProjectInquiryRequest) error {
	f.inquiries = append(f.inquiries, req)
	return f.err
}

func newTestService(t *testing.T) (*DefaultFlowService, *fakeSubmitter) {
	t.Helper()
	sub := &fakeSubmitter{}
	svc := &DefaultFlowService{
		Store:     NewMemoryStateStore(),
		Submitter: sub,
		Logger:    zap.NewNop(),
	}
	return svc, sub
}

func TestCreateAndGetFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created.State.FlowID)
	assert.Equal(t, models.StepPathSelect, created.State.Step)
	assert.Equal(t, models.ModeRecording, created.SessionMode)
	assert.Equal(t, 2*35+2*23, created.Totals.Session)

	got, err := svc.GetFlow(ctx, created.State.FlowID)
	require.NoError(t, err)
	assert.Equal(t, created.State, got.State)
}

func TestGetFlowNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetFlow(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestApplyEventPersistsAcrossCalls(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)
	id := created.State.FlowID

	_, err = svc.ApplyEvent(ctx, id, Event{Action: "choosePath", Choice: ChooseRecordOnly})
	require.NoError(t, err)
	snap, err := svc.ApplyEvent(ctx, id, Event{Action: "setHours", Hours: 6})
	require.NoError(t, err)
	assert.Equal(t, 6, snap.State.Session.Hours)
	assert.Equal(t, 6*35+6*23, snap.Totals.Session)

	got, err := svc.GetFlow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 6, got.State.Session.Hours)
}

func drive(t *testing.T, svc *DefaultFlowService, id string, events ...Event) {
	t.Helper()
	for _, ev := range events {
		_, err := svc.ApplyEvent(context.Background(), id, ev)
		require.NoError(t, err, "event %s", ev.Action)
	}
}

func TestSubmitRecordOnlyFlow(t *testing.T) {
	svc, sub := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)
	id := created.State.FlowID

	drive(t, svc, id,
		Event{Action: "choosePath", Choice: ChooseRecordOnly},
		Event{Action: "setHours", Hours: 4},
		Event{Action: "setBundle", On: true},
		Event{Action: "advance"},
		Event{Action: "setContact", Contact: &models.ContactInfo{
			Name: "Ada Lovelace", Email: "ada@example.com", Phone: "5145551234",
			PreferredDate: "2026-09-12", PreferredTime: "20:00",
		}},
	)

	snap, err := svc.Submit(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepConfirmed, snap.State.Step)
	require.Len(t, sub.sessions, 1)
	require.Empty(t, sub.inquiries)

	req := sub.sessions[0]
	assert.Equal(t, models.PathRecordOnly, req.BookingPath)
	assert.Equal(t, models.ModeRecording, req.SessionMode)
	assert.Equal(t, 4, req.Session.Hours)
	// 20:00 + 4h against an 11-22 window bills two after-hours hours.
	assert.Equal(t, 2, req.Session.AfterHoursCount)
	assert.True(t, req.Session.IsAfterHours)
	require.NotNil(t, req.PostProduction)
	assert.Equal(t, 1, req.PostProduction.MixMasterBundle.Qty)
	assert.True(t, req.Deliverables.StemsExportFree)
	assert.Equal(t, 65, req.BundleSavings)
	assert.Equal(t, req.Totals.Session+req.Totals.Post+req.Totals.Deliverables+req.Totals.Rush, req.Totals.Grand)

	// Confirmed flows are cleared from storage.
	_, err = svc.GetFlow(ctx, id)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestSubmitFullProjectFlow(t *testing.T) {
	svc, sub := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)
	id := created.State.FlowID

	drive(t, svc, id,
		Event{Action: "choosePath", Choice: ChooseFullProject},
		Event{Action: "setInquiry", Inquiry: &models.ProjectInquiry{
			ArtistName: "Nova", Email: "nova@example.com", Phone: "4385551234",
			ProjectType: "ep", Genres: []string{"R&B"}, Timeline: "1month",
			HasBeats: "no", Budget: "3k-5k",
		}},
	)

	_, err = svc.Submit(ctx, id)
	require.NoError(t, err)
	require.Len(t, sub.inquiries, 1)
	require.Empty(t, sub.sessions)

	req := sub.inquiries[0]
	assert.Equal(t, "project-inquiry", req.Type)
	assert.Equal(t, models.PathFullProject, req.BookingPath)
	assert.Equal(t, "Nova", req.Contact.ArtistName)
	assert.Equal(t, "3k-5k", req.Budget)
}

func TestSubmitRejectedOutsideGate(t *testing.T) {
	svc, sub := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, created.State.FlowID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, sub.sessions)
}

func TestSubmitFailureKeepsStateForRetry(t *testing.T) {
	svc, sub := newTestService(t)
	sub.err = errors.New("smtp down")
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)
	id := created.State.FlowID

	drive(t, svc, id,
		Event{Action: "choosePath", Choice: ChooseRecordOnly},
		Event{Action: "advance"},
	)

	snap, err := svc.Submit(ctx, id)
	require.Error(t, err)
	assert.Equal(t, models.StepScheduleContact, snap.State.Step)

	got, err := svc.GetFlow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StepScheduleContact, got.State.Step)
}

func TestCancelFlow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFlow(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.CancelFlow(ctx, created.State.FlowID))
	_, err = svc.GetFlow(ctx, created.State.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}
