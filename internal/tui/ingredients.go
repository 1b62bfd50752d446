package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

type ingredientsMode int

const (
	ingredientsBrowse ingredientsMode = iota
	ingredientsSearch
	ingredientsAdd
)

type ingredientsView struct {
	page *app.IngredientsPage
	run  runner
	mode ingredientsMode
	cur  cursor

	search   textinput.Model
	name     textinput.Model
	quantity textinput.Model
	produce  bool
	focus    int
}

func newIngredientsView(page *app.IngredientsPage, run runner) *ingredientsView {
	search := textinput.New()
	search.Placeholder = "Search ingredients..."
	search.Prompt = "/ "

	name := textinput.New()
	name.Placeholder = "Ingredient name"
	name.Prompt = "Name: "

	quantity := textinput.New()
	quantity.Placeholder = "1"
	quantity.Prompt = "Quantity: "
	quantity.CharLimit = 6

	return &ingredientsView{page: page, run: run, search: search, name: name, quantity: quantity}
}

func (v *ingredientsView) init() tea.Cmd {
	return v.run.do("load", v.page.Load)
}

// ordered is the display order: vegetables and fruits first, then the rest
func (v *ingredientsView) ordered() []model.Ingredient {
	produce, other := v.page.Grouped()
	return append(produce, other...)
}

func (v *ingredientsView) resetForm() {
	v.name.SetValue("")
	v.quantity.SetValue("")
	v.produce = false
	v.focus = 0
	v.name.Blur()
	v.quantity.Blur()
	v.mode = ingredientsBrowse
}

func (v *ingredientsView) update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(doneMsg); ok {
		if done.op == "add" && done.err == nil {
			v.resetForm()
		}
		v.cur.clamp(len(v.ordered()))
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v.updateInputs(msg)
	}

	switch v.mode {
	case ingredientsSearch:
		switch key.String() {
		case "enter", "esc":
			v.search.Blur()
			v.mode = ingredientsBrowse
			return nil
		}
		cmd := v.updateInputs(msg)
		v.page.SetSearch(v.search.Value())
		v.cur.clamp(len(v.ordered()))
		return cmd

	case ingredientsAdd:
		switch key.String() {
		case "esc":
			v.resetForm()
			return nil
		case "tab", "shift+tab":
			v.focus = 1 - v.focus
			if v.focus == 0 {
				v.quantity.Blur()
				return v.name.Focus()
			}
			v.name.Blur()
			return v.quantity.Focus()
		case "ctrl+p":
			v.produce = !v.produce
			return nil
		case "enter":
			qty := 1
			if raw := strings.TrimSpace(v.quantity.Value()); raw != "" {
				qty, _ = strconv.Atoi(raw)
			}
			req := types.AddIngredientRequest{Name: v.name.Value(), Quantity: qty, IsVegetableOrFruit: v.produce}
			return v.run.do("add", func(ctx context.Context) error { return v.page.Add(ctx, req) })
		}
		return v.updateInputs(msg)
	}

	items := v.ordered()
	switch key.String() {
	case "/":
		v.mode = ingredientsSearch
		return v.search.Focus()
	case "a":
		v.mode = ingredientsAdd
		return v.name.Focus()
	case "up", "k":
		v.cur.move(-1, len(items))
	case "down", "j":
		v.cur.move(1, len(items))
	case "r":
		return v.init()
	case "d":
		if len(items) == 0 {
			return nil
		}
		id := items[v.cur].ID
		return v.run.do("delete", func(ctx context.Context) error { return v.page.Delete(ctx, id) })
	}
	return nil
}

func (v *ingredientsView) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case v.mode == ingredientsSearch:
		v.search, cmd = v.search.Update(msg)
	case v.mode == ingredientsAdd && v.focus == 0:
		v.name, cmd = v.name.Update(msg)
	case v.mode == ingredientsAdd:
		v.quantity, cmd = v.quantity.Update(msg)
	}
	return cmd
}

func (v *ingredientsView) render(st Styles) string {
	var b strings.Builder
	produce, other := v.page.Grouped()
	fmt.Fprintf(&b, "%s\n", st.Heading.Render(fmt.Sprintf("Ingredients (%d)", len(v.page.Items()))))

	if v.mode == ingredientsSearch || v.page.Search() != "" {
		b.WriteString(v.search.View() + "\n")
	}
	b.WriteString("\n")

	i := 0
	section := func(title string, items []model.Ingredient) {
		b.WriteString(st.Label.Render(title) + "\n")
		if len(items) == 0 {
			b.WriteString(st.Muted.Render("  none") + "\n")
		}
		for _, item := range items {
			line := fmt.Sprintf("%-24s ×%-4d %s", item.Name, item.Quantity, st.Muted.Render(item.ItemAdded.String()))
			if v.cur.at(i) && v.mode == ingredientsBrowse {
				b.WriteString(st.Cursor.Render("> "+line) + "\n")
			} else {
				b.WriteString(st.Item.Render("  "+line) + "\n")
			}
			i++
		}
	}
	section("Vegetables & Fruits", produce)
	b.WriteString("\n")
	section("Other Ingredients", other)

	if v.mode == ingredientsAdd {
		check := "[ ]"
		if v.produce {
			check = "[x]"
		}
		form := strings.Join([]string{
			st.Label.Render("Add Ingredient"),
			v.name.View(),
			v.quantity.View(),
			check + " Vegetable or fruit (ctrl+p)",
		}, "\n")
		b.WriteString("\n" + st.Box.Render(form))
	}
	return b.String()
}

func (v *ingredientsView) help() string {
	switch v.mode {
	case ingredientsSearch:
		return "type to filter • enter/esc done"
	case ingredientsAdd:
		return "tab switch field • ctrl+p toggle produce • enter add • esc cancel"
	}
	return "↑/↓ move • / search • a add • d delete • r refresh"
}

func (v *ingredientsView) capturing() bool { return v.mode != ingredientsBrowse }
