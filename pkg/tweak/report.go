// pkg/tweak/report.go

package tweak

import "time"

// StepKind tells which part of an entry a Step describes.
type StepKind int

const (
	// StepWhen is a condition check. Result is whether it matched.
	StepWhen StepKind = iota
	// StepThen is a leaf action. Result is true when it succeeded.
	StepThen
	// StepCase is the outcome of a whole case, nested or root. Result is its
	// changed flag.
	StepCase
)

func (k StepKind) String() string {
	switch k {
	case StepWhen:
		return "when"
	case StepThen:
		return "then"
	case StepCase:
		return "case"
	default:
		return "unknown"
	}
}

// Step is a single event of an evaluation.
type Step struct {
	RunID string
	Kind  StepKind
	// Path is the slash-joined names of the cases enclosing the step. For
	// StepCase it ends with the case itself.
	Path   string
	Label  string
	Result bool
	Err    error
	// Duration is only set for StepCase.
	Duration time.Duration
}

// Observer receives evaluation steps synchronously, in evaluation order.
// An observer shared by concurrent evaluations must be safe for concurrent use.
type Observer interface {
	Observe(s Step)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(s Step)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Step) {
	f(s)
}

// Report is the record of one evaluation produced by Case.RunReport.
type Report struct {
	ID       string
	Case     string
	Changed  bool
	Err      error
	Steps    []Step
	Duration time.Duration
}

// Fired returns the leaf actions that completed successfully, in order.
func (r *Report) Fired() []Step {
	var fired []Step
	for _, s := range r.Steps {
		if s.Kind == StepThen && s.Err == nil {
			fired = append(fired, s)
		}
	}
	return fired
}

// Matched returns the labels of the conditions that evaluated to true.
func (r *Report) Matched() []string {
	var labels []string
	for _, s := range r.Steps {
		if s.Kind == StepWhen && s.Result {
			labels = append(labels, s.Label)
		}
	}
	return labels
}

type recorder struct {
	steps []Step
}

func (rec *recorder) Observe(s Step) {
	rec.steps = append(rec.steps, s)
}
