package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tsp/format"
	"github.com/dhamidi/tsp/typespec"
)

func newGenerateCmd() *cobra.Command {
	var outputPath string
	var outputFormat string
	var goPackage string
	var watch bool

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate data-class declarations from a TypeSpec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			if watch {
				return watchAndGenerate(filename, outputPath, outputFormat, goPackage)
			}
			return generateOnce(filename, outputPath, outputFormat, goPackage)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "python", "output format (python, go, json)")
	cmd.Flags().StringVar(&goPackage, "go-package", "types", "package clause for -f go")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate whenever the input file changes")

	return cmd
}

func generateOnce(filename, outputPath, outputFormat, goPackage string) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	doc, err := typespec.Parse(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}

	var buf bytes.Buffer
	var encoder format.Encoder
	switch outputFormat {
	case "python":
		encoder = format.NewPythonEncoder(&buf)
	case "go":
		encoder = format.NewGoEncoder(&buf, format.WithPackage(goPackage))
	case "json":
		encoder = format.NewJSONEncoder(&buf)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Infof("wrote %s", outputPath)
	return nil
}
