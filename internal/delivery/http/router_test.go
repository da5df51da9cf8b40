package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/karla-codes/rest-api/internal/app_errors"
	delivery "github.com/karla-codes/rest-api/internal/delivery/http"
	"github.com/karla-codes/rest-api/internal/models"
	"github.com/karla-codes/rest-api/internal/service"
	"github.com/karla-codes/rest-api/internal/service/account"
	"github.com/karla-codes/rest-api/internal/service/course"
	"github.com/karla-codes/rest-api/pkg/logger"
)

// The handlers are exercised through the assembled router with real
// services on top of in-memory repositories, so routing, middleware
// ordering and error mapping are all under test.

type fakeAccountRepo struct {
	byEmail map[string]*models.Account
	byID    map[int64]*models.Account
	nextID  int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byEmail: make(map[string]*models.Account),
		byID:    make(map[int64]*models.Account),
	}
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, a models.Account) (*models.Account, error) {
	if _, ok := f.byEmail[a.EmailAddress]; ok {
		return nil, app_errors.ErrEmailTaken
	}
	f.nextID++
	a.ID = f.nextID
	f.byEmail[a.EmailAddress] = &a
	f.byID[a.ID] = &a
	return &a, nil
}

func (f *fakeAccountRepo) AccountByEmail(_ context.Context, emailAddress string) (*models.Account, error) {
	if a, ok := f.byEmail[emailAddress]; ok {
		return a, nil
	}
	return nil, app_errors.ErrAccountNotFound
}

func (f *fakeAccountRepo) AccountByEmailFold(_ context.Context, emailAddress string) (*models.Account, error) {
	for stored, a := range f.byEmail {
		if strings.EqualFold(stored, emailAddress) {
			return a, nil
		}
	}
	return nil, app_errors.ErrAccountNotFound
}

type fakeCourseRepo struct {
	accounts *fakeAccountRepo
	courses  map[int64]models.Course
	nextID   int64
	// listErr, when set, makes Courses fail like a broken connection.
	listErr error
}

func newFakeCourseRepo(accounts *fakeAccountRepo) *fakeCourseRepo {
	return &fakeCourseRepo{
		accounts: accounts,
		courses:  make(map[int64]models.Course),
	}
}

func (f *fakeCourseRepo) withOwner(c models.Course) models.Course {
	if owner, ok := f.accounts.byID[c.OwnerID]; ok {
		c.Owner = owner.Public()
	}
	return c
}

func (f *fakeCourseRepo) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	f.nextID++
	course.ID = f.nextID
	f.courses[course.ID] = *course
	return course.ID, nil
}

func (f *fakeCourseRepo) CourseByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, app_errors.ErrCourseNotFound
	}
	course = f.withOwner(course)
	return &course, nil
}

func (f *fakeCourseRepo) Courses(_ context.Context) ([]models.Course, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, f.withOwner(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseRepo) UpdateCourse(_ context.Context, id int64, title, description string) error {
	course, ok := f.courses[id]
	if !ok {
		return app_errors.ErrCourseNotFound
	}
	course.Title = title
	course.Description = description
	f.courses[id] = course
	return nil
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return app_errors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	accounts *fakeAccountRepo
	courses  *fakeCourseRepo
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLogger(t, logger.New("test"), false)
}

func newTestEnvWithLogger(t *testing.T, log logger.Log, logErrors bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accountRepo := newFakeAccountRepo()
	courseRepo := newFakeCourseRepo(accountRepo)

	accountService := account.NewService(log, accountRepo, account.Options{BcryptCost: bcrypt.MinCost})
	courseService := course.NewService(log, courseRepo)

	r := delivery.InitRoutes(log, service.Collection{
		AccountService: accountService,
		CourseService:  courseService,
	}, logErrors)

	return &testEnv{router: r, accounts: accountRepo, courses: courseRepo}
}

type basicAuth struct {
	user string
	pass string
}

func (e *testEnv) request(t *testing.T, method, path string, body any, auth *basicAuth) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != nil {
		req.SetBasicAuth(auth.user, auth.pass)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seedAccount(t *testing.T, first, last, email, password string) *models.Account {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	created, err := e.accounts.CreateAccount(context.Background(), models.Account{
		FirstName:    first,
		LastName:     last,
		EmailAddress: email,
		PasswordHash: string(hash),
	})
	require.NoError(t, err)
	return created
}

func (e *testEnv) seedCourse(t *testing.T, title, description string, ownerID int64) int64 {
	t.Helper()

	id, err := e.courses.CreateCourse(context.Background(), &models.Course{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	})
	require.NoError(t, err)
	return id
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWelcomeRoute(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to the REST API project!", decodeBody(t, w)["message"])
}

func TestUnmatchedRoute(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/nope", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route Not Found", decodeBody(t, w)["message"])
}
