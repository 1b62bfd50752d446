package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

var (
	ingredientSearch  string
	ingredientQty     int
	ingredientProduce bool
)

var ingredientsCmd = &cobra.Command{
	Use:     "ingredients",
	Aliases: []string{"ing"},
	Short:   "List and manage the inventory",
	RunE:    runIngredientsList,
}

var ingredientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingredients grouped into produce and other",
	RunE:  runIngredientsList,
}

var ingredientsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add an ingredient, overwriting one with the same name",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngredientsAdd,
}

var ingredientsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete an ingredient",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngredientsDelete,
}

func init() {
	ingredientsCmd.PersistentFlags().StringVarP(&ingredientSearch, "search", "s", "", "only show names containing this text")
	ingredientsAddCmd.Flags().IntVarP(&ingredientQty, "qty", "n", 1, "quantity")
	ingredientsAddCmd.Flags().BoolVar(&ingredientProduce, "produce", false, "the ingredient is a vegetable or fruit")

	ingredientsCmd.AddCommand(ingredientsListCmd, ingredientsAddCmd, ingredientsDeleteCmd)
}

func runIngredientsList(cmd *cobra.Command, args []string) error {
	page := kitchen.Ingredients()
	if err := page.Load(cmd.Context()); err != nil {
		return report(cmd, err)
	}
	page.SetSearch(ingredientSearch)

	produce, other := page.Grouped()
	st := styles()
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, st.Heading.Render(fmt.Sprintf("Vegetables & Fruits (%d)", len(produce))))
	writeIngredients(w, produce)
	fmt.Fprintln(w, st.Heading.Render(fmt.Sprintf("Other Ingredients (%d)", len(other))))
	writeIngredients(w, other)
	return report(cmd, nil)
}

func writeIngredients(w io.Writer, items []model.Ingredient) {
	for _, item := range items {
		fmt.Fprintf(w, "  %-36s %-24s x%-4d %s\n", item.ID, item.Name, item.Quantity, item.ItemAdded)
	}
}

func runIngredientsAdd(cmd *cobra.Command, args []string) error {
	req := types.AddIngredientRequest{Name: args[0], Quantity: ingredientQty, IsVegetableOrFruit: ingredientProduce}
	return report(cmd, kitchen.Ingredients().Add(cmd.Context(), req))
}

func runIngredientsDelete(cmd *cobra.Command, args []string) error {
	return report(cmd, kitchen.Ingredients().Delete(cmd.Context(), args[0]))
}
