package mock

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/anoideaopen/entrypoint/core/routing"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// Recorder captures invocations of a bound call under test and plays
// back a scripted outcome.
type Recorder struct {
	t     *testing.T
	mu    sync.Mutex
	calls []Call
	ret   any
	err   error
}

// Call is one recorded invocation of the handler.
type Call struct {
	Target any
	Args   []any
}

// NewRecorder creates a recorder. Logging verbosity is taken from the
// LOG environment variable.
func NewRecorder(t *testing.T) *Recorder {
	lvl := logrus.ErrorLevel
	var err error
	if level, ok := os.LookupEnv("LOG"); ok {
		lvl, err = logrus.ParseLevel(level)
		require.NoError(t, err)
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	return &Recorder{t: t}
}

// Returns scripts the value the handler reports on success.
func (r *Recorder) Returns(v any) *Recorder {
	r.ret = v
	return r
}

// Fails scripts the error the handler reports instead of a value.
func (r *Recorder) Fails(err error) *Recorder {
	r.err = err
	return r
}

// Handler returns a bound call that records into r and reports the
// scripted outcome.
func (r *Recorder) Handler() routing.Handler {
	return func(_ context.Context, target any, args []any) (any, error) {
		r.mu.Lock()
		r.calls = append(r.calls, Call{Target: target, Args: args})
		r.mu.Unlock()

		logrus.WithField("args", len(args)).Debug("recorded handler call")

		if r.err != nil {
			return nil, r.err
		}

		return r.ret, nil
	}
}

// CallCount returns the number of recorded invocations.
func (r *Recorder) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.calls)
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Call(nil), r.calls...)
}

// LastCall returns the most recent invocation and fails the test when
// none happened.
func (r *Recorder) LastCall() Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(r.t, r.calls)

	return r.calls[len(r.calls)-1]
}
