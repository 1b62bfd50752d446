package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/client"
)

const (
	notificationTTL      = 5 * time.Second
	visibleNotifications = 3
	msgThemeSaveFailed   = "Failed to save theme preference"
)

// view renders one page and handles its keys
type view interface {
	init() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	render(st Styles) string
	help() string
	// capturing reports whether a text field has focus, which disables
	// the single-key global shortcuts
	capturing() bool
}

// Option customises the root model
type Option func(*Model)

// WithMetrics shows API call counters in the footer
func WithMetrics(fn func() client.MetricsSnapshot) Option {
	return func(m *Model) { m.metrics = fn }
}

// WithStartPage opens the console on p instead of the dashboard
func WithStartPage(p app.Page) Option {
	return func(m *Model) { m.start = p }
}

// Model is the root bubbletea model. It owns navigation and the footer and
// delegates the body to the current page's view.
type Model struct {
	app     *app.App
	ctx     context.Context
	metrics func() client.MetricsSnapshot
	start   app.Page

	mount   uint64
	view    view
	spinner spinner.Model
	styles  Styles

	width    int
	height   int
	quitting bool
}

// NewModel mounts the start page (the dashboard unless overridden)
func NewModel(ctx context.Context, a *app.App, opts ...Option) Model {
	m := Model{
		app:     a,
		ctx:     ctx,
		start:   app.PageDashboard,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		styles:  NewStyles(a.Shell.Theme()),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.mountPage(m.start)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.view.init(), m.spinner.Tick, tick())
}

// mountPage navigates the shell and builds a fresh view for p
func (m *Model) mountPage(p app.Page) {
	m.mount = m.app.Shell.Navigate(p)
	run := runner{ctx: m.ctx, mount: m.mount}
	switch p {
	case app.PageIngredients:
		m.view = newIngredientsView(m.app.Ingredients(), run)
	case app.PageRecipes:
		m.view = newRecipesView(m.app.Recipes(), run)
	case app.PageCreateRecipe:
		m.view = newCreateView(m.app.CreateRecipe(), run)
	case app.PageUploadInvoice:
		m.view = newUploadView(m.app.UploadInvoice(), run)
	case app.PageFavorites:
		m.view = newFavoritesView(m.app.Favorites(), run)
	default:
		m.view = newDashboardView(m.app.Dashboard(), run)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+t":
			theme, err := m.app.Shell.ToggleTheme()
			if err != nil {
				m.app.Shell.Notify(msgThemeSaveFailed, app.SeverityWarning)
			}
			m.styles = NewStyles(theme)
			return m, nil
		}
		if !m.view.capturing() {
			key := msg.String()
			switch key {
			case "q":
				m.quitting = true
				return m, tea.Quit
			case "x":
				if latest, ok := m.app.Shell.Latest(); ok {
					m.app.Shell.Dismiss(latest.ID)
				}
				return m, nil
			}
			if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(app.Pages) {
				m.mountPage(app.Pages[key[0]-'1'])
				return m, m.view.init()
			}
		}
		return m, m.view.update(msg)

	case doneMsg:
		// results of a page that has since been left are dropped
		if !m.app.Shell.IsCurrent(msg.mount) {
			return m, nil
		}
		return m, m.view.update(msg)

	case tickMsg:
		m.app.Shell.DismissOlderThan(notificationTTL)
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.view.update(msg)
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	sections := []string{m.renderNav(), m.view.render(m.styles)}

	var footer []string
	if m.app.Shell.Loading() {
		footer = append(footer, m.spinner.View()+" Loading...")
	}
	notes := m.app.Shell.Notifications()
	if len(notes) > visibleNotifications {
		notes = notes[len(notes)-visibleNotifications:]
	}
	for _, n := range notes {
		footer = append(footer, m.styles.Notification(n))
	}
	if len(footer) > 0 {
		sections = append(sections, strings.Join(footer, "\n"))
	}

	help := m.view.help()
	if !m.view.capturing() {
		help += " • 1-6 pages • x dismiss • q quit"
	}
	help += " • ctrl+t theme"
	sections = append(sections, m.styles.Help.Render(help))

	if m.metrics != nil {
		s := m.metrics()
		sections = append(sections, m.styles.Muted.Render(fmt.Sprintf(
			"API calls %d • errors %d • avg %s", s.Calls, s.Errors, s.AverageLatency().Round(time.Millisecond))))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width > 0 {
		content = lipgloss.NewStyle().MaxWidth(m.width).Render(content)
	}
	return content
}

func (m Model) renderNav() string {
	current := m.app.Shell.CurrentPage()
	tabs := make([]string, len(app.Pages))
	for i, p := range app.Pages {
		label := fmt.Sprintf("%d %s", i+1, p)
		if p == current {
			tabs[i] = m.styles.NavActive.Render(label)
		} else {
			tabs[i] = m.styles.Nav.Render(label)
		}
	}
	title := m.styles.Title.Render("Kitchen Inventory")
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...), "")
}
