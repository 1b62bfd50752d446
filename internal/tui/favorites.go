package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pageza/recipe-ai/internal/app"
)

type favoritesView struct {
	page      *app.FavoritesPage
	run       runner
	cur       cursor
	search    textinput.Model
	searching bool
	detail    bool
}

func newFavoritesView(page *app.FavoritesPage, run runner) *favoritesView {
	search := textinput.New()
	search.Placeholder = "Search favorites..."
	search.Prompt = "/ "
	return &favoritesView{page: page, run: run, search: search}
}

func (v *favoritesView) init() tea.Cmd {
	return v.run.do("load", v.page.Load)
}

func (v *favoritesView) update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(doneMsg); ok {
		v.cur.clamp(len(v.page.Filtered()))
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
		v.cur.clamp(len(v.page.Filtered()))
		return cmd
	}

	if v.detail {
		if s := key.String(); s == "esc" || s == "enter" {
			v.detail = false
			v.page.Select(nil)
		}
		return nil
	}

	recipes := v.page.Filtered()
	switch key.String() {
	case "/":
		v.searching = true
		return v.search.Focus()
	case "up", "k":
		v.cur.move(-1, len(recipes))
	case "down", "j":
		v.cur.move(1, len(recipes))
	case "r":
		return v.init()
	case "enter":
		if len(recipes) > 0 {
			v.page.Select(&recipes[v.cur])
			v.detail = true
		}
	case "u":
		if len(recipes) > 0 {
			r := recipes[v.cur]
			return v.run.do("remove", func(ctx context.Context) error { return v.page.Remove(ctx, r) })
		}
	}
	return nil
}

func (v *favoritesView) render(st Styles) string {
	if v.detail {
		if r, ok := v.page.Selected(); ok {
			return renderRecipe(st, r)
		}
	}

	var b strings.Builder
	b.WriteString(st.Heading.Render("Favorite Recipes") + "\n")
	if v.searching || v.page.Search() != "" {
		b.WriteString(v.search.View() + "\n")
	}
	b.WriteString("\n")

	recipes := v.page.Filtered()
	if len(recipes) == 0 {
		b.WriteString(st.Muted.Render("No favorite recipes yet"))
		return b.String()
	}
	for i, r := range recipes {
		line := "★ " + r.Name
		if v.cur.at(i) {
			b.WriteString(st.Cursor.Render("> "+line) + "\n")
		} else {
			b.WriteString(st.Item.Render("  "+line) + "\n")
		}
	}
	return b.String()
}

func (v *favoritesView) help() string {
	switch {
	case v.searching:
		return "type to filter • enter/esc done"
	case v.detail:
		return "esc close"
	}
	return "↑/↓ move • enter view • u unfavorite • / search • r refresh"
}

func (v *favoritesView) capturing() bool { return v.searching }
