package ordersserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthAPI reports process liveness.
type HealthAPI struct{}

// Get /healthz
func (api *HealthAPI) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
