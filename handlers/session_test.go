package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"alliancewav/models"
	"alliancewav/services/flow"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFlowSubmitter struct {
	sessions int
	err      error
}

func (f *fakeFlowSubmitter) SubmitSessionBooking(ctx context.Context, req models.SessionBookingRequest) error {
	f.sessions++
	return f.err
}

func (f *fakeFlowSubmitter) SubmitProjectInquiry(ctx context.Context, req models.ProjectInquiryRequest) error {
	return f.err
}

func setupFlowRouter(t *testing.T) (*gin.Engine, *fakeFlowSubmitter) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	submitter := &fakeFlowSubmitter{}
	FlowService = &flow.DefaultFlowService{
		Store:     flow.NewMemoryStateStore(),
		Submitter: submitter,
		Logger:    zap.NewNop(),
	}
	r := gin.New()
	r.POST("/api/booking/session", StartBookingFlow)
	r.GET("/api/booking/session/:flowID", GetBookingFlow)
	r.PUT("/api/booking/session/:flowID", ApplyBookingEvent)
	r.POST("/api/booking/session/:flowID/submit", SubmitBookingFlow)
	r.DELETE("/api/booking/session/:flowID", CancelBookingFlow)
	return r, submitter
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createFlow(t *testing.T, r *gin.Engine) flow.Snapshot {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/booking/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap flow.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	require.NotEmpty(t, snap.State.FlowID)
	return snap
}

func TestFlowLifecycleOverHTTP(t *testing.T) {
	r, _ := setupFlowRouter(t)
	snap := createFlow(t, r)
	base := "/api/booking/session/" + snap.State.FlowID

	w := doJSON(r, http.MethodPut, base, flow.Event{Action: "choosePath", Choice: flow.ChooseRecordOnly})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, base, flow.Event{Action: "setHours", Hours: 6})
	require.Equal(t, http.StatusOK, w.Code)
	var updated flow.Snapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 6, updated.State.Session.Hours)
	assert.Equal(t, 6*35+6*23, updated.Totals.Session)

	w = doJSON(r, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlowEventErrorsMapToBadRequest(t *testing.T) {
	r, _ := setupFlowRouter(t)
	snap := createFlow(t, r)
	base := "/api/booking/session/" + snap.State.FlowID

	// Advancing before a path is chosen is a client error.
	w := doJSON(r, http.MethodPut, base, flow.Event{Action: "advance"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, base, flow.Event{Action: "warp"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlowUnknownIDIsNotFound(t *testing.T) {
	r, _ := setupFlowRouter(t)

	w := doJSON(r, http.MethodPut, "/api/booking/session/nope", flow.Event{Action: "advance"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlowSubmitOverHTTP(t *testing.T) {
	r, submitter := setupFlowRouter(t)
	snap := createFlow(t, r)
	base := "/api/booking/session/" + snap.State.FlowID

	for _, ev := range []flow.Event{
		{Action: "choosePath", Choice: flow.ChooseRecordOnly},
		{Action: "advance"},
		{Action: "setContact", Contact: &models.ContactInfo{
			Name: "Ada Lovelace", Email: "ada@example.com", Phone: "5145551234",
			PreferredDate: "2026-09-12", PreferredTime: "14:00",
		}},
	} {
		w := doJSON(r, http.MethodPut, base, ev)
		require.Equal(t, http.StatusOK, w.Code, "event %s", ev.Action)
	}

	w := doJSON(r, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, submitter.sessions)
	assert.Contains(t, w.Body.String(), "Booking request submitted successfully")

	// Submitting from the wrong step is rejected.
	snap2 := createFlow(t, r)
	w = doJSON(r, http.MethodPost, "/api/booking/session/"+snap2.State.FlowID+"/submit", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
