package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printfmt"
	"printfmt/internal/diagfmt"
	"printfmt/internal/driver"
	"printfmt/internal/jobs"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] TEMPLATE [ARG...]",
	Short: "Diagnose a printf template",
	Long: `Check parses TEMPLATE, reports every error and warning, and exits
non-zero when the template cannot render. With --count (and arguments)
it also prints the character count the template would produce.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("count", false, "also print the produced character count")
}

func runCheck(cmd *cobra.Command, cliArgs []string) error {
	template := cliArgs[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	res := driver.Inspect(template, maxDiagnostics)

	if res.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
		diagfmt.Pretty(os.Stderr, template, res.Bag, opts)
	}

	countWanted, _ := cmd.Flags().GetBool("count")
	if countWanted && !res.Bag.HasErrors() {
		vals := make([]any, 0, len(cliArgs)-1)
		for _, raw := range cliArgs[1:] {
			vals = append(vals, jobs.ParseValue(raw))
		}
		// Count without storing: the size-0 buffer sink.
		n, err := printfmt.Snprintf(nil, 0, template, vals...)
		if err != nil {
			return fmt.Errorf("count failed: %w", err)
		}
		fmt.Println(n)
	}

	if res.Bag.HasErrors() {
		return fmt.Errorf("template has errors")
	}
	return nil
}
