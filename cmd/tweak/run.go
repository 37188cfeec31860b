package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zoer/tweak/internal/coords"
	"github.com/zoer/tweak/pkg/tweak"
)

func newRunCmd() *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the coords case against a YAML context",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("failed to open context file: %w", err)
			}
			defer f.Close()

			xy, err := coords.Load(f)
			if err != nil {
				return err
			}

			report, err := coords.NewCase(tweak.WithLogger(log.Logger)).RunReport(&xy)
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			log.Info().
				Str("run_id", report.ID).
				Bool("changed", report.Changed).
				Int("fired", len(report.Fired())).
				Dur("duration", report.Duration).
				Msg("Evaluation completed")

			return coords.Encode(cmd.OutOrStdout(), xy, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "YAML context file")
	cmd.Flags().StringVarP(&output, "output", "o", coords.FormatYAML, "output format (yaml, json)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the outline of the coords case",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := coords.NewCase()
			if err := c.Validate(); err != nil {
				return err
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), c.Describe())
			return err
		},
	}
}
