package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	toolkit "github.com/baditaflorin/go_string_toolkit"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "strtool",
		Short:         "String normalization, validation and table rendering",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newNormalizeCmd(),
		newSlugCmd(),
		newCaseCmd(),
		newPalindromeCmd(),
		newAnagramCmd(),
		newTableCmd(),
		newTypeCmd(),
	)
	return root
}

// argOrStdin joins the args as the input text, falling back to stdin so the
// tool composes with pipes.
func argOrStdin(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func newNormalizeCmd() *cobra.Command {
	var strict, stripEscapes bool
	cmd := &cobra.Command{
		Use:   "normalize [text]",
		Short: "Canonicalize text: fold accents, collapse whitespace, lowercase",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), toolkit.NormalizeWith(text, strict, stripEscapes))
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "keep only letters and digits")
	cmd.Flags().BoolVar(&stripEscapes, "strip-escapes", false, "remove terminal escape sequences")
	return cmd
}

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug [text]",
		Short: "Convert text to a URL-safe slug",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), toolkit.Slugify(text))
			return nil
		},
	}
}

func newCaseCmd() *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "case [text]",
		Short: "Convert text between camel, pascal, snake and kebab case",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			var out string
			switch style {
			case "camel":
				out = toolkit.CamelCase(text)
			case "pascal":
				out = toolkit.PascalCase(text)
			case "snake":
				out = toolkit.SnakeCase(text)
			case "kebab":
				out = toolkit.KebabCase(text)
			default:
				return fmt.Errorf("unknown case style %q", style)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&style, "style", "snake", "target style: camel, pascal, snake or kebab")
	return cmd
}

func newPalindromeCmd() *cobra.Command {
	var keepAccents bool
	cmd := &cobra.Command{
		Use:   "palindrome [text]",
		Short: "Check whether text reads the same backwards",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			result := toolkit.IsPalindrome(toolkit.NewText(text), !keepAccents)
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepAccents, "keep-accents", false, "compare without folding diacritics")
	return cmd
}

func newAnagramCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anagram <a> <b>",
		Short: "Check whether two strings are rearrangements of each other",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := toolkit.IsAnagram(toolkit.NewText(args[0]), toolkit.NewText(args[1]))
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

// tableField mirrors the server's wire shape: ordered key/value pairs, since
// JSON objects do not preserve key order.
type tableField struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Render JSON records from stdin as a box-drawing table",
		Long: `Reads a JSON array of records from stdin, where each record is an
array of {"key": ..., "value": ...} pairs, and prints a box-drawing table.
The first record fixes the column order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			var rows [][]tableField
			if err := json.Unmarshal(data, &rows); err != nil {
				return fmt.Errorf("parsing records: %w", err)
			}
			records := make([]toolkit.Record, len(rows))
			for i, fields := range rows {
				rec := make(toolkit.Record, len(fields))
				for j, f := range fields {
					rec[j] = toolkit.Field{Key: f.Key, Value: f.Value}
				}
				records[i] = rec
			}
			fmt.Fprintln(cmd.OutOrStdout(), toolkit.RenderTable(records))
			return nil
		},
	}
}

func newTypeCmd() *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "type [text]",
		Short: "Print text one character at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := argOrStdin(cmd, args)
			if err != nil {
				return err
			}
			if err := toolkit.TypeOut(os.Stdout, text, delay); err != nil {
				return err
			}
			fmt.Println()
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 40*time.Millisecond, "pause between characters")
	return cmd
}
