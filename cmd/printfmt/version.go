package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"printfmt/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run:   runVersion,
}

func runVersion(*cobra.Command, []string) {
	fmt.Printf("printfmt %s\n", version.Version)
	if version.GitCommit != "" {
		fmt.Printf("commit: %s\n", version.GitCommit)
	}
	if version.BuildDate != "" {
		fmt.Printf("built:  %s\n", version.BuildDate)
	}
}
