package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pageza/recipe-ai/internal/app"
)

const dashboardListLimit = 5

type dashboardView struct {
	page   *app.DashboardPage
	run    runner
	loaded bool
}

func newDashboardView(page *app.DashboardPage, run runner) *dashboardView {
	return &dashboardView{page: page, run: run}
}

func (v *dashboardView) init() tea.Cmd {
	return v.run.do("load", v.page.Load)
}

func (v *dashboardView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case doneMsg:
		if msg.err == nil {
			v.loaded = true
		}
	case tea.KeyMsg:
		if msg.String() == "r" {
			return v.init()
		}
	}
	return nil
}

func (v *dashboardView) render(st Styles) string {
	if !v.loaded {
		return st.Muted.Render("Loading dashboard...")
	}
	data := v.page.Data()

	stat := func(n int, label string) string {
		return st.Stat.Render(fmt.Sprint(n)) + "  " + st.Item.Render(label)
	}
	stats := st.Box.Render(strings.Join([]string{
		stat(data.Stats.TotalIngredients, "Total Ingredients"),
		stat(data.Stats.VegetableCount, "Vegetables & Fruits"),
		stat(data.Stats.OtherCount, "Other Ingredients"),
		stat(data.Stats.RecipeCount, "Recipes"),
		stat(data.Stats.FavoriteCount, "Favorite Recipes"),
	}, "\n"))

	var expiring []string
	for i, item := range data.Expiring {
		if i == dashboardListLimit {
			expiring = append(expiring, st.Muted.Render(fmt.Sprintf("…and %d more", len(data.Expiring)-i)))
			break
		}
		expiring = append(expiring, st.Item.Render(fmt.Sprintf("• %s (added %s)", item.Name, item.ItemAdded)))
	}
	if len(expiring) == 0 {
		expiring = append(expiring, st.Muted.Render("Nothing is expiring soon"))
	}

	var suggestions []string
	for i, s := range data.Suggestions {
		if i == dashboardListLimit {
			break
		}
		line := st.Label.Render(s.Name)
		if s.Description != "" {
			line += st.Muted.Render(" - " + s.Description)
		}
		suggestions = append(suggestions, line)
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, st.Muted.Render("No suggestions right now"))
	}

	var recent []string
	for i := len(data.Recipes) - 1; i >= 0 && len(recent) < dashboardListLimit; i-- {
		r := data.Recipes[i]
		mark := " "
		if r.IsFav {
			mark = "★"
		}
		recent = append(recent, st.Item.Render(fmt.Sprintf("%s %s", mark, r.Name)))
	}
	if len(recent) == 0 {
		recent = append(recent, st.Muted.Render("No recipes yet"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		stats,
		"",
		st.Heading.Render("Expiring Soon"),
		strings.Join(expiring, "\n"),
		"",
		st.Heading.Render("Recipe Suggestions"),
		strings.Join(suggestions, "\n"),
		"",
		st.Heading.Render("Recent Recipes"),
		strings.Join(recent, "\n"),
	)
}

func (v *dashboardView) help() string { return "r refresh" }

func (v *dashboardView) capturing() bool { return false }
