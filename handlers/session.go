package handlers

import (
	"errors"
	"net/http"

	"alliancewav/services/flow"
	"alliancewav/services/submission"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Wired from main during startup.
var FlowService flow.FlowService

// StartBookingFlow creates a new booking flow instance.
func StartBookingFlow(c *gin.Context) {
	snap, err := FlowService.CreateFlow(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to create booking flow", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking flow"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetBookingFlow returns the current state and quote for a flow.
func GetBookingFlow(c *gin.Context) {
	snap, err := FlowService.GetFlow(c.Request.Context(), c.Param("flowID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ApplyBookingEvent applies one mutation event to a flow.
func ApplyBookingEvent(c *gin.Context) {
	var ev flow.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	snap, err := FlowService.ApplyEvent(c.Request.Context(), c.Param("flowID"), ev)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SubmitBookingFlow submits a completed flow: validation, anti-abuse
// screening and email dispatch run through the submission service.
func SubmitBookingFlow(c *gin.Context) {
	snap, err := FlowService.Submit(c.Request.Context(), c.Param("flowID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": bookingAcceptedMsg, "state": snap.State})
}

// CancelBookingFlow discards a flow's stored state.
func CancelBookingFlow(c *gin.Context) {
	if err := FlowService.CancelFlow(c.Request.Context(), c.Param("flowID")); err != nil {
		zap.L().Error("Failed to cancel booking flow", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking flow"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func respondFlowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, flow.ErrFlowNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, flow.ErrInvalidHours),
		errors.Is(err, flow.ErrPathRequired),
		errors.Is(err, flow.ErrRentalMode),
		errors.Is(err, flow.ErrRushUnavailable),
		errors.Is(err, flow.ErrProducerRequiresEngineer),
		errors.Is(err, flow.ErrInvalidTransition),
		errors.Is(err, flow.ErrUnknownAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		var vErr *submission.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		zap.L().Error("Booking flow operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process booking request"})
	}
}
