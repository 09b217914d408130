package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printfmt"
	"printfmt/internal/jobs"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] TEMPLATE [ARG...]",
	Short: "Render a printf template",
	Long: `Render formats TEMPLATE with the given arguments and writes the result
to stdout or --out. Arguments parse as integers when they look like
integers ("0x2a" included); prefix with "str:" to force a literal and
use "nil" for a null string or pointer.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("out", "", "write output to a file instead of stdout")
}

func runRender(cmd *cobra.Command, cliArgs []string) error {
	template := cliArgs[0]
	vals := make([]any, 0, len(cliArgs)-1)
	for _, raw := range cliArgs[1:] {
		vals = append(vals, jobs.ParseValue(raw))
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	var rendered []byte
	n, err := printfmt.Asprintf(&rendered, template, vals...)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(outPath, rendered, 0o644); err != nil {
		return err
	}
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(os.Stderr, "wrote %d characters to %s\n", n, outPath)
	}
	return nil
}
