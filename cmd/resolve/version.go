package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version and commit are set at build time via:
//
//	go build -ldflags "-X main.version=... -X main.commit=..."
var (
	version = "dev"
	commit  = "none"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (commit: %s)\n", appName, version, commit)
		},
	}
}
