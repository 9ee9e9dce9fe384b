package handlers

import (
	"net/http"

	"alliancewav/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness and dependency status.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
