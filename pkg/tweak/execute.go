// pkg/tweak/execute.go

package tweak

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Executor is the action half of an entry. The set of executors is closed:
// it is implemented by *Action (a leaf operation) and *Case (a nested group).
type Executor[C any] interface {
	Name() string
	Exec(ctx *C) (bool, error)

	execute(ctx *C, r *run) (bool, error)
}

var (
	_ Executor[struct{}] = (*Action[struct{}])(nil)
	_ Executor[struct{}] = (*Case[struct{}])(nil)
)

// Option configures how a Case reports on its evaluations.
type Option func(*options)

type options struct {
	logger    zerolog.Logger
	observers []Observer
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger makes evaluations log every step at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithObserver registers an observer notified of every evaluation step.
// Nil observers are ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// run holds the state of one evaluation as it descends the case tree.
type run struct {
	id        string
	logger    zerolog.Logger
	observers []Observer
	path      []string
}

func newRun(o options, extra ...Observer) *run {
	r := &run{
		logger:    o.logger,
		observers: append(append([]Observer(nil), o.observers...), extra...),
	}
	if len(r.observers) > 0 || o.logger.GetLevel() != zerolog.Disabled {
		r.id = uuid.NewString()
	}
	return r
}

// enter returns the run state for the case named name, nested under r.
func (r *run) enter(name string) *run {
	path := make([]string, len(r.path), len(r.path)+1)
	copy(path, r.path)
	return &run{
		id:        r.id,
		logger:    r.logger,
		observers: r.observers,
		path:      append(path, name),
	}
}

func (r *run) emit(s Step) {
	s.RunID = r.id
	s.Path = strings.Join(r.path, "/")

	r.logger.Debug().
		Str("run_id", s.RunID).
		Str("path", s.Path).
		Stringer("kind", s.Kind).
		Str("label", s.Label).
		Bool("result", s.Result).
		Err(s.Err).
		Msg("tweak step")

	for _, obs := range r.observers {
		obs.Observe(s)
	}
}
