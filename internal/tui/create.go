package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pageza/recipe-ai/internal/app"
)

const (
	fieldName = iota
	fieldDescription
	fieldIngredient
	fieldInstructions
	fieldCount
)

// createView is the custom recipe form plus the generator. focus is -1
// while no field is being edited.
type createView struct {
	page  *app.CreateRecipePage
	run   runner
	focus int

	name         textinput.Model
	description  textinput.Model
	ingredient   textinput.Model
	instructions textarea.Model
}

func newCreateView(page *app.CreateRecipePage, run runner) *createView {
	name := textinput.New()
	name.Prompt = "Name: "
	name.Placeholder = "Recipe name"

	description := textinput.New()
	description.Prompt = "Description: "
	description.Placeholder = "Optional"

	ingredient := textinput.New()
	ingredient.Prompt = "Ingredient: "
	ingredient.Placeholder = "enter to add"

	instructions := textarea.New()
	instructions.Placeholder = "One step per line"
	instructions.SetHeight(5)
	instructions.ShowLineNumbers = false

	return &createView{page: page, run: run, focus: -1,
		name: name, description: description, ingredient: ingredient, instructions: instructions}
}

func (v *createView) init() tea.Cmd { return nil }

func (v *createView) setFocus(i int) tea.Cmd {
	v.name.Blur()
	v.description.Blur()
	v.ingredient.Blur()
	v.instructions.Blur()
	v.focus = i
	switch i {
	case fieldName:
		return v.name.Focus()
	case fieldDescription:
		return v.description.Focus()
	case fieldIngredient:
		return v.ingredient.Focus()
	case fieldInstructions:
		return v.instructions.Focus()
	}
	return nil
}

// resetInputs mirrors the page draft back into the widgets
func (v *createView) resetInputs() {
	d := v.page.Draft()
	v.name.SetValue(d.Name)
	v.description.SetValue(d.Description)
	v.instructions.SetValue(d.Instructions)
	v.ingredient.SetValue("")
}

func (v *createView) sync() {
	v.page.SetName(v.name.Value())
	v.page.SetDescription(v.description.Value())
	v.page.SetInstructions(v.instructions.Value())
}

func (v *createView) update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(doneMsg); ok {
		if done.op == "save" && done.err == nil {
			v.resetInputs()
			return v.setFocus(-1)
		}
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+s":
			v.sync()
			return v.run.do("save", v.page.SaveCustom)
		case "ctrl+g":
			return v.run.do("generate", v.page.Generate)
		case "ctrl+f":
			return v.run.do("save-generated", v.page.SaveGenerated)
		case "ctrl+y":
			_ = v.page.SetRecipeType(nextRecipeType(v.page.RecipeType()))
			return nil
		case "ctrl+d":
			if n := len(v.page.Draft().Ingredients); n > 0 {
				v.page.RemoveIngredient(n - 1)
			}
			return nil
		}

		if v.focus < 0 {
			if s := key.String(); s == "tab" || s == "i" {
				return v.setFocus(fieldName)
			}
			return nil
		}

		switch key.String() {
		case "esc":
			v.sync()
			return v.setFocus(-1)
		case "tab":
			return v.setFocus((v.focus + 1) % fieldCount)
		case "shift+tab":
			return v.setFocus((v.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if v.focus == fieldIngredient {
				if v.page.AddIngredient(v.ingredient.Value()) {
					v.ingredient.SetValue("")
				}
				return nil
			}
			if v.focus != fieldInstructions {
				return v.setFocus(v.focus + 1)
			}
		}
	}

	var cmd tea.Cmd
	switch v.focus {
	case fieldName:
		v.name, cmd = v.name.Update(msg)
	case fieldDescription:
		v.description, cmd = v.description.Update(msg)
	case fieldIngredient:
		v.ingredient, cmd = v.ingredient.Update(msg)
	case fieldInstructions:
		v.instructions, cmd = v.instructions.Update(msg)
	}
	v.sync()
	return cmd
}

func (v *createView) render(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("Create Custom Recipe") + "\n")
	b.WriteString(v.name.View() + "\n")
	b.WriteString(v.description.View() + "\n")
	b.WriteString(v.ingredient.View() + "\n")

	items := v.page.Draft().Ingredients
	if len(items) == 0 {
		b.WriteString(st.Muted.Render("  no ingredients yet") + "\n")
	}
	for _, item := range items {
		b.WriteString(st.Item.Render("  • "+item) + "\n")
	}
	b.WriteString(st.Label.Render("Instructions") + "\n")
	b.WriteString(v.instructions.View() + "\n\n")

	b.WriteString(st.Heading.Render("Generate a Recipe") + "\n")
	b.WriteString(st.Muted.Render(fmt.Sprintf("Type: %s (ctrl+y to change)", v.page.RecipeType())) + "\n")
	if r, ok := v.page.Generated(); ok {
		b.WriteString(renderRecipe(st, r))
	}
	return b.String()
}

func (v *createView) help() string {
	if v.focus < 0 {
		return "tab/i edit • ctrl+s save • ctrl+g generate • ctrl+f save generated • ctrl+y type • ctrl+d drop ingredient"
	}
	return "tab next field • enter add ingredient • esc stop editing • ctrl+s save"
}

func (v *createView) capturing() bool { return v.focus >= 0 }
