package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printfmt/internal/diagfmt"
	"printfmt/internal/driver"
)

var explainCmd = &cobra.Command{
	Use:   "explain [flags] TEMPLATE",
	Short: "Break a template down into its directives",
	Long: `Explain parses TEMPLATE and dumps every directive field by field:
flags, width, precision, length and conversion, plus the positional
argument plan when the template uses numbered positions.`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	explainCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runExplain(cmd *cobra.Command, cliArgs []string) error {
	template := cliArgs[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	res := driver.Inspect(template, maxDiagnostics)

	// Диагностика в stderr, если есть
	if res.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		diagfmt.Pretty(os.Stderr, template, res.Bag, opts)
	}

	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
		return diagfmt.DirectivesPretty(os.Stdout, res, opts)
	case "json":
		return diagfmt.DirectivesJSON(os.Stdout, res)
	case "msgpack":
		return diagfmt.DirectivesMsgpack(os.Stdout, res)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
