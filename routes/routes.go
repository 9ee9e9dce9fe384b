package routes

import (
	"alliancewav/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints for the booking backend.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthCheck)

	booking := r.Group("/api/booking")
	{
		booking.POST("", handlers.SubmitBooking)

		booking.POST("/session", handlers.StartBookingFlow)
		booking.GET("/session/:flowID", handlers.GetBookingFlow)
		booking.PUT("/session/:flowID", handlers.ApplyBookingEvent)
		booking.POST("/session/:flowID/submit", handlers.SubmitBookingFlow)
		booking.DELETE("/session/:flowID", handlers.CancelBookingFlow)
	}
}
