package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/expense-tally/internal/cli"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the configured expense categories",
		Long: `Display the categories the form accepts, in selector order.

The set comes from categories.list in the config file, or from the
categories.preset (standard or extended) when no list is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\n",
				headerStyle.Render("#"),
				headerStyle.Render("Category"))

			for i, c := range app.Categories.All() {
				fmt.Fprintf(w, "%d\t%s\n", i+1, c)
			}

			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%d categories configured", app.Categories.Len())))
			if !app.ClearFields {
				fmt.Fprintln(out, cli.SubtleStyle.Render("(clear-fields action disabled)"))
			}

			return nil
		},
	}
}
