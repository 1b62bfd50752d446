package service

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pageza/recipe-ai/internal/model"
)

const maxRecipeItems = 5

var pantryStaples = []string{"olive oil", "garlic", "lemon", "fresh herbs", "chilli flakes"}

var dishStyles = []string{"skillet", "traybake", "salad", "soup", "stir-fry"}

var surpriseDishes = []model.Recipe{
	{
		Name:         "Shakshuka",
		Description:  "Eggs poached in a spiced tomato and pepper sauce.",
		Items:        model.StringList{"4 eggs", "1 can tomatoes", "1 red pepper", "1 onion", "cumin", "paprika"},
		Instructions: model.StringList{"Soften the onion and pepper.", "Add spices and tomatoes and simmer 10 minutes.", "Make wells, crack in the eggs and cover until set."},
		Tags:         model.StringList{"breakfast", "vegetarian"},
		CookingTime:  25,
		IsVeg:        true,
	},
	{
		Name:         "Miso Glazed Aubergine",
		Description:  "Roasted aubergine halves brushed with sweet miso.",
		Items:        model.StringList{"2 aubergines", "2 tbsp white miso", "1 tbsp mirin", "1 tsp sugar", "sesame seeds"},
		Instructions: model.StringList{"Halve and score the aubergines.", "Roast cut side down for 20 minutes.", "Brush with the miso glaze and grill until caramelised."},
		Tags:         model.StringList{"japanese", "vegan"},
		CookingTime:  30,
		IsVeg:        true,
	},
	{
		Name:         "Lemon Herb Chicken",
		Description:  "Pan-roasted chicken thighs with lemon and thyme.",
		Items:        model.StringList{"4 chicken thighs", "1 lemon", "thyme", "garlic", "olive oil"},
		Instructions: model.StringList{"Season the chicken.", "Sear skin side down until crisp.", "Add lemon, garlic and thyme and roast 20 minutes."},
		Tags:         model.StringList{"dinner"},
		CookingTime:  35,
	},
}

// Chef composes placeholder recipes from the inventory. Output depends only
// on its inputs.
type Chef struct {
	title cases.Caser
}

// NewChef creates a Chef
func NewChef() *Chef {
	return &Chef{title: cases.Title(language.English)}
}

// Compose builds a recipe of the given type. seq varies the dish when the
// inventory alone does not.
func (c *Chef) Compose(recipeType model.RecipeType, inventory []model.Ingredient, seq int) model.Recipe {
	if recipeType == model.RecipeTypeSurprise || len(inventory) == 0 {
		dish := surpriseDishes[seq%len(surpriseDishes)]
		dish.Items = append(model.StringList(nil), dish.Items...)
		dish.Instructions = append(model.StringList(nil), dish.Instructions...)
		dish.Tags = append(model.StringList(nil), dish.Tags...)
		return dish
	}

	chosen := append([]model.Ingredient(nil), inventory...)
	sort.SliceStable(chosen, func(i, j int) bool { return chosen[i].Name < chosen[j].Name })
	if len(chosen) > maxRecipeItems {
		chosen = chosen[:maxRecipeItems]
	}

	names := make([]string, len(chosen))
	items := make(model.StringList, 0, len(chosen)+2)
	veg := true
	for i, ing := range chosen {
		names[i] = strings.ToLower(ing.Name)
		items = append(items, fmt.Sprintf("%s (%d)", ing.Name, ing.Quantity))
		veg = veg && ing.IsVegetableOrFruit
	}

	style := dishStyles[seq%len(dishStyles)]
	tags := model.StringList{"from inventory"}
	if recipeType == model.RecipeTypeExpiring {
		for i := 0; i < 2; i++ {
			items = append(items, pantryStaples[(seq+i)%len(pantryStaples)])
		}
		tags = append(tags, "extra ingredients")
	}

	name := c.title.String(names[0])
	if len(names) > 1 {
		name += " and " + c.title.String(names[1])
	}
	name += " " + c.title.String(style)

	return model.Recipe{
		Name:        name,
		Description: fmt.Sprintf("A %s built around %s.", style, strings.Join(names, ", ")),
		Items:       items,
		Instructions: model.StringList{
			"Wash and prepare " + strings.Join(names, ", ") + ".",
			fmt.Sprintf("Cook everything together as a %s until tender.", style),
			"Season to taste and serve.",
		},
		Tags:        tags,
		CookingTime: 15 + 5*len(items),
		IsVeg:       veg,
	}
}

// Suggest derives up to limit short recipe ideas from ingredient names
func (c *Chef) Suggest(names []string, limit int) []model.Suggestion {
	out := make([]model.Suggestion, 0, limit)
	for i, name := range names {
		if i >= limit {
			break
		}
		style := dishStyles[i%len(dishStyles)]
		out = append(out, model.Suggestion{
			Name:        c.title.String(name + " " + style),
			Description: fmt.Sprintf("A quick %s that uses up your %s.", style, strings.ToLower(name)),
		})
	}
	return out
}
