package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"peacey/internal/assistant"
)

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List the package catalog and themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := assistant.Build(cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range a.Catalog.Packages {
			fmt.Fprintf(out, "%-12s %s\n", p.Name, a.Catalog.Price(p))
		}
		if len(a.Catalog.Themes) > 0 {
			fmt.Fprintln(out, "\nThemes:")
			for i, t := range a.Catalog.Themes {
				fmt.Fprintf(out, "%d. %s\n", i+1, t)
			}
		}
		return nil
	},
}
