package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/karla-codes/rest-api/internal/app_errors"
	"github.com/karla-codes/rest-api/pkg/logger"
)

// ErrorResponder is the single channel for errors that handlers do not
// resolve locally. Validation and authentication failures never reach it;
// everything else maps here to one status per error class.
type ErrorResponder struct {
	log       logger.Log
	logErrors bool
}

func NewErrorResponder(l logger.Log, logErrors bool) *ErrorResponder {
	return &ErrorResponder{
		log:       l,
		logErrors: logErrors,
	}
}

func (r *ErrorResponder) Respond(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app_errors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
	case errors.Is(err, app_errors.ErrNotCourseOwner):
		c.Status(http.StatusForbidden)
	case errors.Is(err, app_errors.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Email address already in use"}})
	default:
		if r.logErrors {
			r.log.ErrorErr("unhandled error", err,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error(), "error": gin.H{}})
	}
}
