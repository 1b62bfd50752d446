package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/model"
)

type recipesView struct {
	page      *app.RecipesPage
	run       runner
	cur       cursor
	search    textinput.Model
	searching bool
	detail    bool
}

func newRecipesView(page *app.RecipesPage, run runner) *recipesView {
	search := textinput.New()
	search.Placeholder = "Search recipes..."
	search.Prompt = "/ "
	return &recipesView{page: page, run: run, search: search}
}

func (v *recipesView) init() tea.Cmd {
	return v.run.do("load", v.page.Load)
}

func nextRecipeType(t model.RecipeType) model.RecipeType {
	if t >= model.RecipeTypeSurprise {
		return model.RecipeTypeAvailable
	}
	return t + 1
}

func (v *recipesView) update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(doneMsg); ok {
		if done.op == "generate" && done.err == nil {
			v.detail = true
		}
		v.cur.clamp(len(v.page.Displayed()))
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.searching {
			var cmd tea.Cmd
			v.search, cmd = v.search.Update(msg)
			return cmd
		}
		return nil
	}

	if v.searching {
		switch key.String() {
		case "enter", "esc":
			v.searching = false
			v.search.Blur()
			return nil
		}
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		v.page.SetSearch(v.search.Value())
		v.cur.clamp(len(v.page.Displayed()))
		return cmd
	}

	if v.detail {
		switch key.String() {
		case "esc", "enter", "v":
			v.detail = false
			v.page.Select(nil)
		case "f":
			if r, ok := v.page.Selected(); ok {
				v.detail = false
				return v.run.do("favorite", func(ctx context.Context) error { return v.page.ToggleFavorite(ctx, r) })
			}
		}
		return nil
	}

	displayed := v.page.Displayed()
	var current *model.Recipe
	if len(displayed) > 0 {
		current = &displayed[v.cur]
	}

	switch key.String() {
	case "/":
		v.searching = true
		return v.search.Focus()
	case "up", "k":
		v.cur.move(-1, len(displayed))
	case "down", "j":
		v.cur.move(1, len(displayed))
	case "tab":
		tab := v.page.Tab()
		v.page.SetTab(app.RecipeTabs[(int(tab)+1)%len(app.RecipeTabs)])
		v.cur = 0
	case "y":
		_ = v.page.SetRecipeType(nextRecipeType(v.page.RecipeType()))
	case "g":
		return v.run.do("generate", v.page.Generate)
	case "r":
		return v.init()
	case "enter":
		if current != nil {
			v.page.ToggleExpanded(current.ID)
		}
	case "v":
		if current != nil {
			v.page.Select(current)
			v.detail = true
		}
	case "f":
		if current != nil {
			r := *current
			return v.run.do("favorite", func(ctx context.Context) error { return v.page.ToggleFavorite(ctx, r) })
		}
	case "d":
		if current != nil {
			id := current.ID
			return v.run.do("delete", func(ctx context.Context) error { return v.page.Delete(ctx, id) })
		}
	}
	return nil
}

func (v *recipesView) render(st Styles) string {
	if v.detail {
		if r, ok := v.page.Selected(); ok {
			return renderRecipe(st, r)
		}
	}

	var b strings.Builder
	var tabs []string
	for _, tab := range app.RecipeTabs {
		if tab == v.page.Tab() {
			tabs = append(tabs, st.NavActive.Render(tab.String()))
		} else {
			tabs = append(tabs, st.Nav.Render(tab.String()))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	b.WriteString(st.Muted.Render("Generate: "+v.page.RecipeType().String()) + "\n")
	if v.searching || v.page.Search() != "" {
		b.WriteString(v.search.View() + "\n")
	}
	b.WriteString("\n")

	displayed := v.page.Displayed()
	if len(displayed) == 0 {
		b.WriteString(st.Muted.Render("No recipes found"))
		return b.String()
	}
	for i, r := range displayed {
		star := " "
		if r.IsFav {
			star = "★"
		}
		line := fmt.Sprintf("%s %s", star, r.Name)
		if v.cur.at(i) {
			b.WriteString(st.Cursor.Render("> "+line) + "\n")
		} else {
			b.WriteString(st.Item.Render("  "+line) + "\n")
		}
		if v.page.Expanded(r.ID) {
			if r.Description != "" {
				b.WriteString(st.Muted.Render("    "+r.Description) + "\n")
			}
			for _, item := range r.Items {
				b.WriteString(st.Item.Render("    • "+item) + "\n")
			}
		}
	}
	return b.String()
}

func (v *recipesView) help() string {
	switch {
	case v.searching:
		return "type to filter • enter/esc done"
	case v.detail:
		return "f favorite • esc close"
	}
	return "↑/↓ move • tab switch tab • enter expand • v view • f favorite • d delete • g generate • y type • / search"
}

func (v *recipesView) capturing() bool { return v.searching }

// renderRecipe draws the full detail card for r
func renderRecipe(st Styles, r model.Recipe) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(r.Name) + "\n")
	if r.Description != "" {
		b.WriteString(st.Muted.Render(r.Description) + "\n")
	}
	var meta []string
	if r.CookingTime > 0 {
		meta = append(meta, fmt.Sprintf("%d min", r.CookingTime))
	}
	if r.IsVeg {
		meta = append(meta, "vegetarian")
	}
	if r.IsFav {
		meta = append(meta, "★ favorite")
	}
	meta = append(meta, r.Tags...)
	if len(meta) > 0 {
		b.WriteString(st.Label.Render(strings.Join(meta, " · ")) + "\n")
	}

	b.WriteString("\n" + st.Heading.Render("Ingredients") + "\n")
	for _, item := range r.Items {
		b.WriteString(st.Item.Render("• "+item) + "\n")
	}
	b.WriteString("\n" + st.Heading.Render("Instructions") + "\n")
	for i, step := range r.Instructions {
		b.WriteString(st.Item.Render(fmt.Sprintf("%d. %s", i+1, step)) + "\n")
	}
	if r.Notes != "" {
		b.WriteString("\n" + st.Muted.Render(r.Notes) + "\n")
	}
	return st.Box.Render(strings.TrimRight(b.String(), "\n"))
}
