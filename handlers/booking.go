package handlers

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"alliancewav/models"
	"alliancewav/services/ratelimit"
	"alliancewav/services/submission"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// Wired from main during startup.
var (
	SubmissionService submission.SubmissionService
	SubmissionLimiter ratelimit.Store
)

const (
	bookingAcceptedMsg = "Booking request submitted successfully"
	inquiryAcceptedMsg = "Project inquiry submitted successfully"
)

// SubmitBooking handles POST /api/booking. The body is one of two tagged
// variants: a session booking, or a project inquiry marked with
// type "project-inquiry".
func SubmitBooking(c *gin.Context) {
	key := ratelimit.ClientKey(c.GetHeader("X-Forwarded-For"))
	decision := SubmissionLimiter.CheckAndIncrement(key)
	if !decision.Allowed {
		minutes := int(math.Ceil(decision.ResetIn.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		zap.L().Warn("Booking rate limit exceeded", zap.String("ip", key))
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": fmt.Sprintf("Too many booking requests. Please try again in %d minutes.", minutes),
		})
		return
	}

	var probe struct {
		Type        string             `json:"type"`
		BookingPath models.BookingPath `json:"bookingPath"`
	}
	if err := c.ShouldBindBodyWith(&probe, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if probe.Type == "project-inquiry" && probe.BookingPath == models.PathFullProject {
		handleProjectInquiry(c)
		return
	}
	handleSessionBooking(c)
}

func handleSessionBooking(c *gin.Context) {
	var req models.SessionBookingRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := SubmissionService.SubmitSessionBooking(c.Request.Context(), req); err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": bookingAcceptedMsg})
}

func handleProjectInquiry(c *gin.Context) {
	var req models.ProjectInquiryRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := SubmissionService.SubmitProjectInquiry(c.Request.Context(), req); err != nil {
		respondSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": inquiryAcceptedMsg})
}

func respondSubmissionError(c *gin.Context, err error) {
	var vErr *submission.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		return
	}
	zap.L().Error("Booking submission failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process booking request"})
}
