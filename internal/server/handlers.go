package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teklink/devid/internal/model"
)

func (s *Server) registerRoutes() {
	s.router.Any("/identify", s.handleIdentify)
	s.router.GET("/health", s.handleHealth)
}

// handleIdentify accepts the six classification fields from either the query
// string (GET) or a JSON / form body (POST) and returns the classification
// result. Missing or malformed fields normalize to empty strings; the engine
// treats those as safe defaults rather than errors.
func (s *Server) handleIdentify(c *gin.Context) {
	var req model.Request
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBind(&req); err != nil {
			req = model.Request{}
		}
	} else {
		if err := c.ShouldBindQuery(&req); err != nil {
			req = model.Request{}
		}
	}

	c.JSON(http.StatusOK, s.engine.Classify(req))
}

// handleHealth is the unauthenticated liveness check.
func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
