package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karimhabush/cis-vsphere/internal/benchmark"
)

var controlsSections []int

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "List the benchmark controls without connecting anywhere.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sections := benchmark.Filter(benchmark.Sections(nil), controlsSections, nil)

		out := cmd.OutOrStdout()
		var total, automated int
		for _, section := range sections {
			fmt.Fprintf(out, "Section %d: %s\n", section.ID, section.Name)
			for _, def := range section.Controls {
				kind := "automated"
				if def.Control.Manual() {
					kind = "manual"
				}
				fmt.Fprintf(out, "  %-7s %-4s %-9s %s\n",
					def.Control.ID, string(def.Control.Severity), kind, def.Control.Title)
				total++
				if !def.Control.Manual() {
					automated++
				}
			}
		}
		fmt.Fprintf(out, "\n%d controls (%d automated, %d manual)\n", total, automated, total-automated)
		return nil
	},
}

func init() {
	controlsCmd.Flags().IntSliceVar(&controlsSections, "section", nil, "list only the named section(s)")
}
