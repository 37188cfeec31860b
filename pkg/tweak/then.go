// pkg/tweak/then.go

package tweak

// ThenFunc is an operation applied to the context when its condition matches.
type ThenFunc[C any] func(ctx *C) error

// Action is a leaf executor wrapping a single operation.
type Action[C any] struct {
	name string
	fn   ThenFunc[C]
}

// NewAction creates an action labelled with name.
func NewAction[C any](name string, fn ThenFunc[C]) *Action[C] {
	return &Action[C]{name: name, fn: fn}
}

// Name returns the action label.
func (a *Action[C]) Name() string {
	return a.name
}

// Exec applies the operation. It reports true whenever the operation
// succeeds, whether or not the context was observably changed.
func (a *Action[C]) Exec(ctx *C) (bool, error) {
	if a.fn == nil {
		return true, nil
	}
	if err := a.fn(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (a *Action[C]) execute(ctx *C, r *run) (bool, error) {
	ok, err := a.Exec(ctx)
	r.emit(Step{Kind: StepThen, Label: a.name, Result: ok, Err: err})
	return ok, err
}
