package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/model"
)

var (
	recipeSearch string
	recipeTab    string
	recipeType   int
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "List, generate and manage recipes",
	RunE:  runRecipesList,
}

var recipesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE:  runRecipesList,
}

var recipesShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one recipe in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesShow,
}

var recipesGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a recipe from the inventory",
	Long: `Generate a recipe. Types:
  1  strictly from available ingredients
  2  available ingredients plus one or two new ones
  3  a completely new dish`,
	RunE: runRecipesGenerate,
}

var recipesFavoriteCmd = &cobra.Command{
	Use:   "favorite ID",
	Short: "Toggle the favorite flag of a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesFavorite,
}

var recipesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesDelete,
}

func init() {
	recipesCmd.PersistentFlags().StringVarP(&recipeSearch, "search", "s", "", "only show names containing this text")
	recipesCmd.PersistentFlags().StringVar(&recipeTab, "tab", "all", "all, favorites or regular")
	recipesGenerateCmd.Flags().IntVarP(&recipeType, "type", "t", int(model.RecipeTypeAvailable), "recipe type (1-3)")

	recipesCmd.AddCommand(recipesListCmd, recipesShowCmd, recipesGenerateCmd, recipesFavoriteCmd, recipesDeleteCmd)
}

func parseTab(name string) (app.RecipeTab, error) {
	for _, tab := range app.RecipeTabs {
		if strings.EqualFold(tab.String(), name) {
			return tab, nil
		}
	}
	return 0, fmt.Errorf("unknown tab %q", name)
}

func runRecipesList(cmd *cobra.Command, args []string) error {
	tab, err := parseTab(recipeTab)
	if err != nil {
		return err
	}
	page := kitchen.Recipes()
	if err := page.Load(cmd.Context()); err != nil {
		return report(cmd, err)
	}
	page.SetTab(tab)
	page.SetSearch(recipeSearch)

	w := cmd.OutOrStdout()
	recipes := page.Displayed()
	fmt.Fprintln(w, styles().Heading.Render(fmt.Sprintf("%s (%d)", tab, len(recipes))))
	for _, r := range recipes {
		star := " "
		if r.IsFav {
			star = "*"
		}
		fmt.Fprintf(w, "%s %-36s %s\n", star, r.ID, r.Name)
	}
	return report(cmd, nil)
}

func loadRecipe(cmd *cobra.Command, page *app.RecipesPage, id string) (model.Recipe, error) {
	if err := page.Load(cmd.Context()); err != nil {
		return model.Recipe{}, err
	}
	for _, r := range page.Recipes() {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Recipe{}, fmt.Errorf("recipe %q not found", id)
}

func runRecipesShow(cmd *cobra.Command, args []string) error {
	page := kitchen.Recipes()
	r, err := loadRecipe(cmd, page, args[0])
	if err != nil {
		return report(cmd, err)
	}
	writeRecipe(cmd.OutOrStdout(), r)
	return report(cmd, nil)
}

func writeRecipe(w io.Writer, r model.Recipe) {
	st := styles()
	fmt.Fprintln(w, st.Title.Render(r.Name))
	if r.Description != "" {
		fmt.Fprintln(w, r.Description)
	}
	if len(r.Tags) > 0 {
		fmt.Fprintln(w, st.Muted.Render(strings.Join(r.Tags, ", ")))
	}
	fmt.Fprintln(w, st.Heading.Render("Ingredients"))
	for _, item := range r.Items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
	fmt.Fprintln(w, st.Heading.Render("Instructions"))
	for i, step := range r.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}

func runRecipesGenerate(cmd *cobra.Command, args []string) error {
	page := kitchen.Recipes()
	if err := page.SetRecipeType(model.RecipeType(recipeType)); err != nil {
		return err
	}
	if err := page.Generate(cmd.Context()); err != nil {
		return report(cmd, err)
	}
	if r, ok := page.Selected(); ok {
		writeRecipe(cmd.OutOrStdout(), r)
	}
	return report(cmd, nil)
}

func runRecipesFavorite(cmd *cobra.Command, args []string) error {
	page := kitchen.Recipes()
	r, err := loadRecipe(cmd, page, args[0])
	if err != nil {
		return report(cmd, err)
	}
	return report(cmd, page.ToggleFavorite(cmd.Context(), r))
}

func runRecipesDelete(cmd *cobra.Command, args []string) error {
	return report(cmd, kitchen.Recipes().Delete(cmd.Context(), args[0]))
}
