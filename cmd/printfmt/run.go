package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"printfmt/internal/jobs"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] JOBS.toml",
	Short: "Render a TOML job manifest",
	Long: `Run loads a manifest of render jobs and formats them in parallel.
Jobs with an "output" path are written to disk; the rest print to
stdout in manifest order.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Int("jobs", 0, "maximum parallel jobs (0 = NumCPU)")
}

func runRun(cmd *cobra.Command, cliArgs []string) error {
	manifest, err := jobs.Load(cliArgs[0])
	if err != nil {
		return err
	}

	workers, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	results, err := jobs.Run(cmd.Context(), manifest, workers)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Job.Name, r.Err)
			continue
		}
		if r.Job.Output != "" {
			if err := os.WriteFile(r.Job.Output, r.Output, 0o644); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s: %v\n", r.Job.Name, err)
				continue
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "%s: wrote %d characters to %s\n",
					r.Job.Name, r.Count, r.Job.Output)
			}
			continue
		}
		if _, err := os.Stdout.Write(r.Output); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}
