package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the auditor version and the benchmark revision it implements.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "cis-vsphere %s commit=%s benchmark=CIS VMware ESXi 7.0 v1.2.0\n", version, commit)
		return nil
	},
}
