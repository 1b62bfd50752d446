package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteSearch string

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite recipes",
	RunE:  runFavoritesList,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a recipe from the favorites",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

func init() {
	favoritesCmd.Flags().StringVarP(&favoriteSearch, "search", "s", "", "only show names containing this text")
	favoritesCmd.AddCommand(favoritesRemoveCmd)
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	page := kitchen.Favorites()
	if err := page.Load(cmd.Context()); err != nil {
		return report(cmd, err)
	}
	page.SetSearch(favoriteSearch)

	w := cmd.OutOrStdout()
	for _, r := range page.Filtered() {
		fmt.Fprintf(w, "%-36s %s\n", r.ID, r.Name)
	}
	return report(cmd, nil)
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	page := kitchen.Favorites()
	if err := page.Load(cmd.Context()); err != nil {
		return report(cmd, err)
	}
	for _, r := range page.Recipes() {
		if r.ID == args[0] {
			return report(cmd, page.Remove(cmd.Context(), r))
		}
	}
	return report(cmd, fmt.Errorf("favorite recipe %q not found", args[0]))
}
