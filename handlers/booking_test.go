package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alliancewav/models"
	"alliancewav/services/ratelimit"
	"alliancewav/services/submission"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubmissionService struct {
	sessions  []models.SessionBookingRequest
	inquiries []models.ProjectInquiryRequest
	err       error
}

func (f *fakeSubmissionService) SubmitSessionBooking(ctx context.Context, req models.SessionBookingRequest) error {
	f.sessions = append(f.sessions, req)
	return f.err
}

func (f *fakeSubmissionService) SubmitProjectInquiry(ctx context.Context, req models.ProjectInquiryRequest) error {
	f.inquiries = append(f.inquiries, req)
	return f.err
}

type fakeLimiter struct {
	decision ratelimit.Decision
	keys     []string
}

func (f *fakeLimiter) CheckAndIncrement(key string) ratelimit.Decision {
	f.keys = append(f.keys, key)
	return f.decision
}

func setupBookingRouter(svc submission.SubmissionService, limiter ratelimit.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	SubmissionService = svc
	SubmissionLimiter = limiter
	r := gin.New()
	r.POST("/api/booking", SubmitBooking)
	return r
}

func postBooking(r *gin.Engine, body any, headers map[string]string) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func allowAll() *fakeLimiter {
	return &fakeLimiter{decision: ratelimit.Decision{Allowed: true, Remaining: 4, ResetIn: time.Hour}}
}

func TestSubmitBookingSuccess(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := setupBookingRouter(svc, allowAll())

	w := postBooking(r, models.SessionBookingRequest{
		Contact:     models.ContactInfo{Name: "Ada", Email: "ada@example.com"},
		BookingPath: models.PathRecordOnly,
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Booking request submitted successfully", resp["message"])
	require.Len(t, svc.sessions, 1)
	assert.Equal(t, "ada@example.com", svc.sessions[0].Contact.Email)
}

func TestSubmitBookingDispatchesInquiryVariant(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := setupBookingRouter(svc, allowAll())

	w := postBooking(r, models.ProjectInquiryRequest{
		Type:        "project-inquiry",
		BookingPath: models.PathFullProject,
		Contact:     models.InquiryContact{ArtistName: "Nova", Email: "nova@example.com"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project inquiry submitted successfully")
	assert.Len(t, svc.inquiries, 1)
	assert.Empty(t, svc.sessions)
}

func TestSubmitBookingInquiryTagWithoutFullProjectPathFallsThrough(t *testing.T) {
	svc := &fakeSubmissionService{}
	r := setupBookingRouter(svc, allowAll())

	w := postBooking(r, map[string]any{
		"type":        "project-inquiry",
		"bookingPath": "record-only",
		"contact":     map[string]any{"name": "Ada"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, svc.sessions, 1)
	assert.Empty(t, svc.inquiries)
}

func TestSubmitBookingValidationError(t *testing.T) {
	svc := &fakeSubmissionService{
		err: &submission.ValidationError{Field: "email", Message: "is not a valid email address"},
	}
	r := setupBookingRouter(svc, allowAll())

	w := postBooking(r, models.SessionBookingRequest{BookingPath: models.PathRecordOnly}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email: is not a valid email address", resp["error"])
}

func TestSubmitBookingInternalError(t *testing.T) {
	svc := &fakeSubmissionService{err: assert.AnError}
	r := setupBookingRouter(svc, allowAll())

	w := postBooking(r, models.SessionBookingRequest{BookingPath: models.PathRecordOnly}, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to process booking request")
}

func TestSubmitBookingRateLimited(t *testing.T) {
	limiter := &fakeLimiter{decision: ratelimit.Decision{ResetIn: 42 * time.Minute}}
	svc := &fakeSubmissionService{}
	r := setupBookingRouter(svc, limiter)

	w := postBooking(r, models.SessionBookingRequest{}, map[string]string{
		"X-Forwarded-For": "1.2.3.4, 10.0.0.1",
	})

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "42 minutes")
	assert.Empty(t, svc.sessions)

	// The window is keyed by the client-most forwarded address.
	require.Len(t, limiter.keys, 1)
	assert.Equal(t, "1.2.3.4", limiter.keys[0])
}

func TestSubmitBookingRateLimitKeyFallsBackToUnknown(t *testing.T) {
	limiter := allowAll()
	r := setupBookingRouter(&fakeSubmissionService{}, limiter)

	postBooking(r, models.SessionBookingRequest{}, nil)
	require.Len(t, limiter.keys, 1)
	assert.Equal(t, "unknown", limiter.keys[0])
}

func TestSubmitBookingMalformedJSON(t *testing.T) {
	r := setupBookingRouter(&fakeSubmissionService{}, allowAll())

	req := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}
