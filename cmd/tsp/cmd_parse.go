package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tsp/format"
	"github.com/dhamidi/tsp/typespec"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a TypeSpec file and dump the document tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			doc, err := typespec.Parse(string(source))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			return format.NewJSONEncoder(os.Stdout).Encode(doc)
		},
	}
}
