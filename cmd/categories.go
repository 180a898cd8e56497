package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/blockhint/internal/diagnosis"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the error categories hints are written for",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		cats := diagnosis.AllCategories()

		// Header.
		fmt.Fprintf(out, "%-34s  %-28s  %s\n", "ID", "Label", "Description")
		fmt.Fprintln(out, strings.Repeat("─", 110))

		for _, c := range cats {
			desc := c.Description
			if len(desc) > 44 {
				desc = desc[:41] + "..."
			}
			fmt.Fprintf(out, "%-34s  %-28s  %s\n", c.ID, c.Label, desc)
		}

		fmt.Fprintf(out, "\n%d categories\n", len(cats))
	},
}
