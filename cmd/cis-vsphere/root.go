package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "cis-vsphere",
	Short:         "cis-vsphere audits ESXi hosts and VMs against the CIS benchmark.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(auditCmd, controlsCmd, versionCmd)
}
