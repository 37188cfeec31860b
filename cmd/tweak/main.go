// Command tweak runs the coords example case against a context file.
//
// Usage:
//
//	# Evaluate the case against a YAML context and print the result
//	tweak run --input xy.yaml
//
//	# Show every evaluation step
//	tweak run --input xy.yaml --log-level debug
//
//	# Print the case outline
//	tweak describe
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("tweak failed")
		os.Exit(1)
	}
}
