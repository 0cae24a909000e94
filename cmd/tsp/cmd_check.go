package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tsp/format"
	"github.com/dhamidi/tsp/typespec"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse TypeSpec files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, filename := range args {
				if err := checkFile(filename); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %s\n", filename, err)
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("check failed")
			}
			return nil
		},
	}
}

func checkFile(filename string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	doc, err := typespec.Parse(string(source))
	if err != nil {
		return err
	}
	return format.CheckReferences(doc)
}
