package http_test

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures ErrorErr calls so tests can assert on what
// the responder logs.
type recordingLogger struct {
	mu      sync.Mutex
	errored []error
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Warn(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}
func (l *recordingLogger) Fatal(string, ...interface{}) {}

func (l *recordingLogger) ErrorErr(_ string, err error, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errored = append(l.errored, err)
}

func (l *recordingLogger) FatalErr(string, error, ...interface{}) {}

func (l *recordingLogger) recorded() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error(nil), l.errored...)
}

func TestUnexpectedErrors(t *testing.T) {
	t.Parallel()

	t.Run("map to a 500 with the error envelope", func(t *testing.T) {
		t.Parallel()
		log := &recordingLogger{}
		env := newTestEnvWithLogger(t, log, true)
		env.courses.listErr = errors.New("connection reset by peer")

		w := env.request(t, http.MethodGet, "/courses", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "connection reset by peer", body["message"])
		assert.Equal(t, map[string]any{}, body["error"])

		require.Len(t, log.recorded(), 1)
		assert.EqualError(t, log.recorded()[0], "connection reset by peer")
	})

	t.Run("server-side logging stays off when not enabled", func(t *testing.T) {
		t.Parallel()
		log := &recordingLogger{}
		env := newTestEnvWithLogger(t, log, false)
		env.courses.listErr = errors.New("connection reset by peer")

		w := env.request(t, http.MethodGet, "/courses", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, map[string]any{}, decodeBody(t, w)["error"])
		assert.Empty(t, log.recorded())
	})
}
