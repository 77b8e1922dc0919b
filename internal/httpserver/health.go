package httpserver

import (
	"line-task-tracker/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "line-task-tracker"
)

// probe answers a health probe with the given status.
func (srv HTTPServer) probe(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":    status,
			"service":   ServiceName,
			"version":   HealthVersion,
			"scheduler": srv.reminderHandler != nil,
		})
	}
}

// healthCheck reports the process is up.
// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) { srv.probe("healthy")(c) }

// readyCheck reports the routes are mounted and traffic can be served.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) { srv.probe("ready")(c) }

// liveCheck handles liveness probes.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) { srv.probe("alive")(c) }
