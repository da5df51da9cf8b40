package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karla-codes/rest-api/internal/models"
	"github.com/karla-codes/rest-api/pkg/logger"
)

const (
	CurrentAccountCtx = "current_account"
	RequestIDCtx      = "request_id"
)

// Authenticate gates a route with HTTP Basic authentication. Every
// rejection path answers with the same generic body so that the client
// cannot tell a missing header from an unknown account or a wrong
// password; the specific reason is only logged server-side.
func (h *AccountHandler) Authenticate(c *gin.Context) {
	emailAddress, password, ok := c.Request.BasicAuth()
	if !ok {
		h.log.Warn("auth header not found", "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
		return
	}

	account, err := h.service.Verify(c.Request.Context(), emailAddress, password)
	if err != nil {
		h.log.Warn("authentication failure", "email", emailAddress, logger.Err(err))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
		return
	}

	c.Set(CurrentAccountCtx, account)
	c.Next()
}

// currentAccount returns the account resolved by Authenticate. The bool
// is false when the middleware did not run, which on a guarded route is
// a wiring mistake.
func currentAccount(c *gin.Context) (*models.Account, bool) {
	raw, exists := c.Get(CurrentAccountCtx)
	if !exists {
		return nil, false
	}
	account, ok := raw.(*models.Account)
	return account, ok
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RequestIDCtx, uuid.NewString())
		c.Next()
	}
}

func LoggingMiddleware(logger logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path
		rawQuery := c.Request.URL.RawQuery
		if rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}
		status := c.Writer.Status()

		msg := fmt.Sprintf("%s %s", method, path)

		logger.Info(msg,
			"status", status,
			"latency", latency,
			"client_ip", clientIP,
			"request_id", c.GetString(RequestIDCtx),
		)

		for _, ginErr := range c.Errors {
			logger.ErrorErr("HTTP request error", ginErr.Err,
				"status", status,
				"method", method,
				"path", path,
			)
		}
	}
}
