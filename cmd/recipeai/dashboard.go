package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show inventory and recipe statistics",
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	page := kitchen.Dashboard()
	if err := page.Load(cmd.Context()); err != nil {
		return report(cmd, err)
	}

	st := styles()
	w := cmd.OutOrStdout()
	data := page.Data()
	fmt.Fprintln(w, st.Heading.Render("Overview"))
	fmt.Fprintf(w, "  Total ingredients:   %d\n", data.Stats.TotalIngredients)
	fmt.Fprintf(w, "  Vegetables & fruits: %d\n", data.Stats.VegetableCount)
	fmt.Fprintf(w, "  Other ingredients:   %d\n", data.Stats.OtherCount)
	fmt.Fprintf(w, "  Recipes:             %d\n", data.Stats.RecipeCount)
	fmt.Fprintf(w, "  Favorite recipes:    %d\n", data.Stats.FavoriteCount)

	fmt.Fprintln(w, st.Heading.Render("Expiring Soon"))
	if len(data.Expiring) == 0 {
		fmt.Fprintln(w, st.Muted.Render("  Nothing is expiring soon"))
	}
	for _, item := range data.Expiring {
		fmt.Fprintf(w, "  %s (added %s)\n", item.Name, item.ItemAdded)
	}

	fmt.Fprintln(w, st.Heading.Render("Recipe Suggestions"))
	for _, s := range data.Suggestions {
		if s.Description != "" {
			fmt.Fprintf(w, "  %s - %s\n", s.Name, s.Description)
		} else {
			fmt.Fprintf(w, "  %s\n", s.Name)
		}
	}
	return report(cmd, nil)
}
