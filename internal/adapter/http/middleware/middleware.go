package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"revenue-recovery/internal/core/ports"
	"revenue-recovery/pkg/apperror"
	"revenue-recovery/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderCronSecret authenticates the external cron service on the
	// scheduler trigger route.
	HeaderCronSecret = "X-Cron-Secret"

	// Context keys
	CtxOperatorID = "operator_id"
	CtxCompanyID  = "company_id"
	CtxRequestID  = "request_id"
)

// RequestID assigns every request a correlation id, echoed in the
// response envelope and carried into logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(CtxRequestID, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// JWTAuth validates bearer tokens on operator routes and exposes the
// operator and company identity to handlers.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(authHeader[7:])
		if err != nil {
			log.Debug().Err(err).Msg("token validation failed")
			response.Error(c, apperror.ErrInvalidToken())
			c.Abort()
			return
		}

		c.Set(CtxOperatorID, claims.OperatorID)
		c.Set(CtxCompanyID, claims.CompanyID)
		c.Next()
	}
}

// CronAuth admits the scheduler trigger either with the shared cron
// secret or with an operator JWT. The secret comparison is constant
// time; an empty configured secret disables that path entirely.
func CronAuth(cronSecret string, tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if provided := c.GetHeader(HeaderCronSecret); provided != "" {
			if cronSecret != "" && subtle.ConstantTimeCompare([]byte(provided), []byte(cronSecret)) == 1 {
				c.Next()
				return
			}
			response.Error(c, apperror.ErrInvalidCronSecret())
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if len(authHeader) >= 8 && authHeader[:7] == "Bearer " {
			claims, err := tokenSvc.Validate(authHeader[7:])
			if err == nil {
				c.Set(CtxOperatorID, claims.OperatorID)
				c.Set(CtxCompanyID, claims.CompanyID)
				c.Next()
				return
			}
			log.Debug().Err(err).Msg("scheduler trigger token validation failed")
		}

		response.Error(c, apperror.ErrInvalidCronSecret())
		c.Abort()
	}
}

// RequestLogger logs every HTTP request with latency and status.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
