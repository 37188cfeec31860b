// Package tweak applies when/then clauses to a context value.
//
// A Case holds an ordered list of conditions, each paired with at most one
// action. The action is either a plain operation or a nested Case, so rules
// can be grouped to any depth:
//
//	type XY struct{ X, Y int }
//
//	changed, err := tweak.New[XY]("coords").
//		When("x > 0", func(ctx *XY) (bool, error) { return ctx.X > 0, nil }).
//		ThenCase("tweak x", func(c *tweak.Case[XY]) *tweak.Case[XY] {
//			return c.
//				When("x == 5", func(ctx *XY) (bool, error) { return ctx.X == 5, nil }).
//				Then("multiply x by 3", func(ctx *XY) error { ctx.X *= 3; return nil })
//		}).
//		Run(&xy)
//
// Evaluation visits entries top to bottom and stops at the first error,
// which is returned as is. Labels are never interpreted; they show up in
// Describe, in Report steps and in debug logs when a logger is configured
// with WithLogger.
package tweak
