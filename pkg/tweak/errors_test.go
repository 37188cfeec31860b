package tweak

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Clean(t *testing.T) {
	assert.NoError(t, nestedCase().Validate())
}

func TestValidate(t *testing.T) {
	c := New[counter]("root").
		Then("too early", set(1)).
		When("no predicate", nil).
		Then("no operation", nil).
		When("is 1", equals(1)).
		ThenCase("inner", func(sub *Case[counter]) *Case[counter] {
			return sub.ThenCase("inner orphan", nil)
		})

	err := c.Validate()
	require.Error(t, err)

	var got []BuildError
	var walk func(error)
	walk = func(err error) {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				walk(e)
			}
			return
		}
		var be *BuildError
		require.True(t, errors.As(err, &be))
		got = append(got, *be)
	}
	walk(err)

	assert.Equal(t, []BuildError{
		{Case: "root", Label: "too early", Message: msgOrphanAction},
		{Case: "root", Label: "no predicate", Message: msgNoPredicate},
		{Case: "root", Label: "no operation", Message: msgNoOperation},
		{Case: "inner", Label: "inner orphan", Message: msgOrphanAction},
	}, got)
}

func TestBuildError_Error(t *testing.T) {
	err := &BuildError{Case: "coords", Label: "set x", Message: msgOrphanAction}
	assert.Equal(t, `case "coords": action declared before any condition "set x"`, err.Error())
}

func TestDescribe(t *testing.T) {
	expected := "case root\n" +
		"  when is 3\n" +
		"    then multiply by 3\n" +
		"  when is 5\n" +
		"    case inner\n" +
		"      when is 5\n" +
		"        then multiply by 5\n"

	assert.Equal(t, expected, nestedCase().Describe())
}
