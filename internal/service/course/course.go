package course

import (
	"context"

	"github.com/karla-codes/rest-api/internal/app_errors"
	"github.com/karla-codes/rest-api/internal/models"
	"github.com/karla-codes/rest-api/pkg/logger"
)

type Repo interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
	Courses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id int64, title, description string) error
	DeleteCourse(ctx context.Context, id int64) error
}

type Service struct {
	log  logger.Log
	repo Repo
}

func NewService(l logger.Log, repo Repo) *Service {
	return &Service{
		log:  l,
		repo: repo,
	}
}

func (s *Service) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.Courses(ctx)
}

func (s *Service) ByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.repo.CourseByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, course models.Course) (int64, error) {
	return s.repo.CreateCourse(ctx, &course)
}

// Update applies title and description to the course. The requester must
// be the course owner; a mismatch leaves the course untouched.
func (s *Service) Update(ctx context.Context, id, requesterID int64, title, description string) error {
	course, err := s.repo.CourseByID(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(requesterID) {
		return app_errors.ErrNotCourseOwner
	}
	return s.repo.UpdateCourse(ctx, id, title, description)
}

// Delete removes the course, subject to the same ownership rule as Update.
func (s *Service) Delete(ctx context.Context, id, requesterID int64) error {
	course, err := s.repo.CourseByID(ctx, id)
	if err != nil {
		return err
	}
	if !course.OwnedBy(requesterID) {
		return app_errors.ErrNotCourseOwner
	}
	return s.repo.DeleteCourse(ctx, id)
}
