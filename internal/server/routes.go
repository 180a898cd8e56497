package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Block program debugging hint service. POST a submission to /get_debugging_hint."

func (s *Server) routes() {
	s.engine.GET("/", s.handleRoot)
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/categories", s.handleCategories)
	s.engine.POST("/get_debugging_hint", s.handleHint)

	if s.cfg.Telemetry.MetricsEnabled && s.metrics != nil {
		s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
