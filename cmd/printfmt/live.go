package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"printfmt/internal/ui"
)

var liveCmd = &cobra.Command{
	Use:   "live [TEMPLATE [ARG...]]",
	Short: "Interactive template playground",
	Long: `Live opens an interactive playground: edit a template and its
arguments and watch the rendered output and diagnostics update on
every keystroke.`,
	RunE: runLive,
}

func runLive(_ *cobra.Command, cliArgs []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("live mode needs a terminal")
	}
	template := ""
	argsLine := ""
	if len(cliArgs) > 0 {
		template = cliArgs[0]
		argsLine = strings.Join(cliArgs[1:], ", ")
	}
	return ui.RunLive(template, argsLine)
}
