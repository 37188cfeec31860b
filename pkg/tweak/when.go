// pkg/tweak/when.go

package tweak

// WhenFunc is a predicate over the context. Predicates are expected not to
// mutate the context, although nothing prevents them from doing so.
type WhenFunc[C any] func(ctx *C) (bool, error)

// Condition is a named predicate guarding an entry of a Case.
type Condition[C any] struct {
	name string
	fn   WhenFunc[C]
}

// NewCondition creates a condition labelled with name.
func NewCondition[C any](name string, fn WhenFunc[C]) *Condition[C] {
	return &Condition[C]{name: name, fn: fn}
}

// Name returns the condition label.
func (w *Condition[C]) Name() string {
	return w.name
}

// Check runs the predicate against ctx and returns its result as is.
// A condition without a predicate never matches.
func (w *Condition[C]) Check(ctx *C) (bool, error) {
	if w.fn == nil {
		return false, nil
	}
	return w.fn(ctx)
}
