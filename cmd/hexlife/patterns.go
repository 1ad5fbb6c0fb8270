package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hexlife/pkg/hexgrid"
	"hexlife/pkg/sims/life"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in stamp patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := life.NewCatalog(hexgrid.NewH3())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCELLS")
		for _, p := range cat.All() {
			fmt.Fprintf(w, "%s\t%d\n", p.Name(), p.Size())
		}
		return w.Flush()
	},
}
