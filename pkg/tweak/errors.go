// pkg/tweak/errors.go

package tweak

import "fmt"

// BuildError describes a declaration that has no effect on evaluation, such
// as an action declared before any condition.
type BuildError struct {
	Case    string
	Label   string
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("case %q: %s %q", e.Case, e.Message, e.Label)
}

const (
	msgOrphanAction = "action declared before any condition"
	msgNoPredicate  = "condition has no predicate"
	msgNoOperation  = "action has no operation"
)
