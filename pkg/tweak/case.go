// pkg/tweak/case.go

package tweak

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type entry[C any] struct {
	when *Condition[C]
	then Executor[C]
}

// Case is an ordered group of when/then entries. It is built by chaining
// When, Then and ThenCase, and can itself be used as the action of an entry
// of another case.
//
// A case must not be modified once it is being evaluated. Evaluations only
// read it, so one case may be run concurrently against distinct contexts.
type Case[C any] struct {
	name    string
	entries []entry[C]
	orphans []string
	opts    options
}

// New creates an empty case.
func New[C any](name string, opts ...Option) *Case[C] {
	c := &Case[C]{name: name, opts: defaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Name returns the case label.
func (c *Case[C]) Name() string {
	return c.name
}

// Len returns the number of declared conditions.
func (c *Case[C]) Len() int {
	return len(c.entries)
}

// When declares a new condition.
func (c *Case[C]) When(name string, fn WhenFunc[C]) *Case[C] {
	c.entries = append(c.entries, entry[C]{when: NewCondition(name, fn)})
	return c
}

// Then sets the action of the last declared condition, replacing any action
// set before. Without a preceding condition the action is dropped.
func (c *Case[C]) Then(name string, fn ThenFunc[C]) *Case[C] {
	c.attach(NewAction(name, fn))
	return c
}

// ThenCase builds a nested case with build and sets it as the action of the
// last declared condition, with the same rules as Then.
func (c *Case[C]) ThenCase(name string, build func(*Case[C]) *Case[C]) *Case[C] {
	sub := New[C](name)
	if build != nil {
		if built := build(sub); built != nil {
			sub = built
		}
	}
	c.attach(sub)
	return c
}

func (c *Case[C]) attach(exec Executor[C]) {
	if len(c.entries) == 0 {
		c.orphans = append(c.orphans, exec.Name())
		return
	}
	c.entries[len(c.entries)-1].then = exec
}

// Run evaluates the case against ctx. Entries are visited in declaration
// order: when a condition matches, its action runs before the next condition
// is checked. The first error returned by a condition or an action stops the
// evaluation and is returned unchanged; changes already made to ctx are kept.
//
// The result is true when at least one condition matched and its action, if
// any, completed.
func (c *Case[C]) Run(ctx *C) (bool, error) {
	return c.execute(ctx, newRun(c.opts))
}

// Exec is Run. It lets a case act as an Executor.
func (c *Case[C]) Exec(ctx *C) (bool, error) {
	return c.Run(ctx)
}

// RunReport evaluates the case like Run and records every step. The report
// is returned even when the evaluation fails; its Err is the returned error.
func (c *Case[C]) RunReport(ctx *C) (*Report, error) {
	rec := &recorder{}
	r := newRun(c.opts, rec)

	start := time.Now()
	changed, err := c.execute(ctx, r)

	return &Report{
		ID:       r.id,
		Case:     c.name,
		Changed:  changed,
		Err:      err,
		Steps:    rec.steps,
		Duration: time.Since(start),
	}, err
}

func (c *Case[C]) execute(ctx *C, parent *run) (bool, error) {
	r := parent.enter(c.name)
	start := time.Now()

	changed, err := c.evaluate(ctx, r)

	r.emit(Step{
		Kind:     StepCase,
		Label:    c.name,
		Result:   changed,
		Err:      err,
		Duration: time.Since(start),
	})
	return changed, err
}

func (c *Case[C]) evaluate(ctx *C, r *run) (bool, error) {
	changed := false

	for _, e := range c.entries {
		if e.when == nil {
			continue
		}

		matched, err := e.when.Check(ctx)
		r.emit(Step{Kind: StepWhen, Label: e.when.name, Result: matched, Err: err})
		if err != nil {
			return false, err
		}
		if !matched {
			continue
		}

		if e.then != nil {
			if _, err := e.then.execute(ctx, r); err != nil {
				return false, err
			}
		}
		changed = true
	}

	return changed, nil
}

// Validate reports declarations that have no effect on evaluation: actions
// declared before any condition, and conditions or actions declared with a
// nil function. Nested cases are validated too. It returns nil when there is
// nothing to report; otherwise every problem is a *BuildError.
func (c *Case[C]) Validate() error {
	var errs []error
	for _, label := range c.orphans {
		errs = append(errs, &BuildError{Case: c.name, Label: label, Message: msgOrphanAction})
	}

	for _, e := range c.entries {
		if e.when != nil && e.when.fn == nil {
			errs = append(errs, &BuildError{Case: c.name, Label: e.when.name, Message: msgNoPredicate})
		}
		switch then := e.then.(type) {
		case *Action[C]:
			if then.fn == nil {
				errs = append(errs, &BuildError{Case: c.name, Label: then.name, Message: msgNoOperation})
			}
		case *Case[C]:
			if err := then.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Describe renders the case as an indented outline of its labels.
func (c *Case[C]) Describe() string {
	var b strings.Builder
	c.describe(&b, 0)
	return b.String()
}

func (c *Case[C]) describe(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%scase %s\n", indent, c.name)

	for _, e := range c.entries {
		if e.when == nil {
			continue
		}
		fmt.Fprintf(b, "%s  when %s\n", indent, e.when.name)

		switch then := e.then.(type) {
		case *Action[C]:
			fmt.Fprintf(b, "%s    then %s\n", indent, then.name)
		case *Case[C]:
			then.describe(b, depth+2)
		}
	}
}
