// internal/coords/coords.go

package coords

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zoer/tweak/pkg/tweak"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// XY is the context the coords case works on.
type XY struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// NewCase builds the coords case:
//
//	x > 0 -> tweak x: x == 5 -> x *= 3; x > 10 -> x = 10
//	y > 0 -> tweak y: y > 0 -> y = 10 / y
func NewCase(opts ...tweak.Option) *tweak.Case[XY] {
	return tweak.New[XY]("coords", opts...).
		When("x > 0", func(ctx *XY) (bool, error) { return ctx.X > 0, nil }).
		ThenCase("tweak x", func(c *tweak.Case[XY]) *tweak.Case[XY] {
			return c.
				When("x == 5", func(ctx *XY) (bool, error) { return ctx.X == 5, nil }).
				Then("multiply x by 3", func(ctx *XY) error {
					ctx.X *= 3
					return nil
				}).
				When("x > 10", func(ctx *XY) (bool, error) { return ctx.X > 10, nil }).
				Then("set x to 10", func(ctx *XY) error {
					ctx.X = 10
					return nil
				})
		}).
		When("y > 0", func(ctx *XY) (bool, error) { return ctx.Y > 0, nil }).
		ThenCase("tweak y", func(c *tweak.Case[XY]) *tweak.Case[XY] {
			return c.
				When("y > 0", func(ctx *XY) (bool, error) { return ctx.Y > 0, nil }).
				Then("divide 10 by y", func(ctx *XY) error {
					ctx.Y = 10 / ctx.Y
					return nil
				})
		})
}

// Load decodes a context from YAML. Unknown fields are rejected.
func Load(r io.Reader) (XY, error) {
	var xy XY

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&xy); err != nil {
		if errors.Is(err, io.EOF) {
			return XY{}, errors.New("empty context document")
		}
		return XY{}, fmt.Errorf("failed to decode context: %w", err)
	}
	return xy, nil
}

// Encode writes xy to w in the given format.
func Encode(w io.Writer, xy XY, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(xy); err != nil {
			return fmt.Errorf("failed to encode context: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(xy); err != nil {
			return fmt.Errorf("failed to encode context: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}
