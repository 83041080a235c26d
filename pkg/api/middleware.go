package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const agentContextKey = "authenticated_agent"

// requestLogger logs each request with slog and records latency.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// SSE requests hold the connection open for minutes; logging
		// them at exit is still correct, just late.
		logger.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()))
	}
}

// metricsMiddleware observes request latency per route.
func (s *Server) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		s.metrics.HTTPDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// adminAuth gates operator endpoints behind the admin bearer token.
func (s *Server) adminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.AdminToken == "" {
			// Auth disabled (local development).
			c.Next()
			return
		}
		token, ok := bearerToken(c)
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Next()
	}
}

// agentAuth verifies the per-agent bearer token for the agent named in
// the path and stores the authenticated agent on the context.
func (s *Server) agentAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		a, err := s.agents.VerifyToken(c.Request.Context(), name, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set(agentContextKey, a)
		c.Next()
	}
}

// commandAuth authenticates command callbacks: the command id resolves
// to a run, the run's campaign names the agent, and the presented token
// must verify for that agent.
func (s *Server) commandAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		commandID := c.Param("command_id")
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		run, err := s.runs.GetByCommandID(c.Request.Context(), commandID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		campaign, err := s.campaigns.Get(c.Request.Context(), run.CampaignID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		agent, err := s.agents.Get(c.Request.Context(), campaign.AgentID)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		if _, err := s.agents.VerifyToken(c.Request.Context(), agent.Name, token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return "", false
	}
	token := strings.TrimSpace(h[len(prefix):])
	return token, token != ""
}
