package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karla-codes/rest-api/internal/models"
	"github.com/karla-codes/rest-api/pkg/logger"
)

type CourseService interface {
	List(ctx context.Context) ([]models.Course, error)
	ByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course models.Course) (int64, error)
	Update(ctx context.Context, id, requesterID int64, title, description string) error
	Delete(ctx context.Context, id, requesterID int64) error
}

type CourseHandler struct {
	log     logger.Log
	service CourseService
	respond *ErrorResponder
}

func NewCourseHandler(l logger.Log, s CourseService, r *ErrorResponder) *CourseHandler {
	return &CourseHandler{
		log:     l,
		service: s,
		respond: r,
	}
}

// courseInput is the one set of field rules for both create and update.
type courseInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respond.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *CourseHandler) ByID(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	course, err := h.service.ByID(c.Request.Context(), id)
	if err != nil {
		h.respond.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (h *CourseHandler) Create(c *gin.Context) {
	var input courseInput
	if !bindInput(c, &input) {
		return
	}

	account, ok := currentAccount(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
		return
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     account.ID,
	}
	id, err := h.service.Create(c.Request.Context(), course)
	if err != nil {
		h.respond.Respond(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/courses/%d", id))
	c.Status(http.StatusCreated)
}

func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	var input courseInput
	if !bindInput(c, &input) {
		return
	}

	account, ok := currentAccount(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, account.ID, input.Title, input.Description); err != nil {
		h.respond.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := courseID(c)
	if !ok {
		return
	}

	account, ok := currentAccount(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, account.ID); err != nil {
		h.respond.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// courseID parses the :id path parameter. A non-numeric value cannot
// reference any course, so it answers 404 like a missing course does.
func courseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Course not found"})
		return 0, false
	}
	return id, true
}
