package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/saffron/parser"
)

func newLexCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lex <file>",
		Short: "Tokenize a .sfr file and dump the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			tokens, lexErr := parser.Lex(string(data), filename)
			if lexErr != nil {
				return fmt.Errorf("lex: %w", lexErr)
			}

			switch outputFormat {
			case "json":
				text, err := json.MarshalIndent(tokens, "", "  ")
				if err != nil {
					return fmt.Errorf("encode: %w", err)
				}
				fmt.Println(string(text))
			case "text":
				for _, tok := range tokens {
					fmt.Printf("%d:%d\t%s\t%q\n",
						tok.Span.Start.Line, tok.Span.Start.Column, tok.Kind, tok.Literal)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (json, text)")

	return cmd
}
