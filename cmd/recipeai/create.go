package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-ai/internal/model"
)

var (
	draftName         string
	draftDescription  string
	draftIngredients  []string
	draftInstructions string
	draftStepsFile    string
	draftGenerate     bool
	draftSave         bool
	draftType         int
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Save a custom recipe or generate one",
	Example: `  recipeai create --name "Tomato Soup" -i tomatoes -i onion --instructions "Chop
Simmer"
  recipeai create --generate --type 3 --save`,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&draftName, "name", "", "recipe name")
	createCmd.Flags().StringVar(&draftDescription, "description", "", "short description")
	createCmd.Flags().StringArrayVarP(&draftIngredients, "ingredient", "i", nil, "ingredient (repeatable)")
	createCmd.Flags().StringVar(&draftInstructions, "instructions", "", "instructions, one step per line")
	createCmd.Flags().StringVar(&draftStepsFile, "instructions-file", "", "read instructions from a file")
	createCmd.Flags().BoolVar(&draftGenerate, "generate", false, "generate a recipe instead of saving a custom one")
	createCmd.Flags().BoolVar(&draftSave, "save", false, "with --generate, save the result to favorites")
	createCmd.Flags().IntVarP(&draftType, "type", "t", int(model.RecipeTypeAvailable), "with --generate, recipe type (1-3)")
	createCmd.MarkFlagsMutuallyExclusive("instructions", "instructions-file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	page := kitchen.CreateRecipe()

	if draftGenerate {
		if err := page.SetRecipeType(model.RecipeType(draftType)); err != nil {
			return err
		}
		if err := page.Generate(cmd.Context()); err != nil {
			return report(cmd, err)
		}
		if r, ok := page.Generated(); ok {
			writeRecipe(cmd.OutOrStdout(), r)
		}
		if draftSave {
			return report(cmd, page.SaveGenerated(cmd.Context()))
		}
		return report(cmd, nil)
	}

	instructions := draftInstructions
	if draftStepsFile != "" {
		data, err := os.ReadFile(draftStepsFile)
		if err != nil {
			return err
		}
		instructions = string(data)
	}

	page.SetName(draftName)
	page.SetDescription(draftDescription)
	page.SetInstructions(instructions)
	for _, item := range draftIngredients {
		page.AddIngredient(item)
	}
	return report(cmd, page.SaveCustom(cmd.Context()))
}
