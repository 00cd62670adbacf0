package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/saffron/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .sfr file and dump the module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			module, errs := parser.ParseDocument(string(data), filename)
			if len(errs) > 0 {
				for _, parseErr := range errs {
					fmt.Fprintln(os.Stderr, parseErr)
				}
				return fmt.Errorf("parse: %d errors", len(errs))
			}

			switch outputFormat {
			case "json":
				text, err := json.MarshalIndent(module, "", "  ")
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println(string(text))
			case "text":
				fmt.Printf("module %s\n", module.Name)
				for _, imp := range module.Imports {
					fmt.Printf("  import %s (%s)\n", imp.Module, imp.Kind)
				}
				for _, def := range module.Defs {
					fmt.Printf("  def %s\n", def.Name)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")

	return cmd
}
