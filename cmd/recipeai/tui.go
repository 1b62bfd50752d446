package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/tui"
)

var startPage string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive console (same as default)",
	Long: `Start the terminal console. Pages are switched with the keys 1-6,
ctrl+t toggles the theme and q quits.

Note: This is the same as running the program without any commands.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&startPage, "page", "p", "", "page to open (dashboard, ingredients, recipes, create, upload, favorites)")
}

// parsePage accepts a page number (1-6) or a case-insensitive page name
func parsePage(name string) (app.Page, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return app.PageDashboard, nil
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(app.Pages) {
		return app.Pages[n-1], nil
	}
	want := strings.ToLower(name)
	for _, p := range app.Pages {
		full := strings.ToLower(p.String())
		if want == full || want == strings.Fields(full)[0] || want == strings.ReplaceAll(full, " ", "-") {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", name)
}

func runTUI(cmd *cobra.Command, args []string) error {
	page, err := parsePage(startPage)
	if err != nil {
		return err
	}

	// log lines would corrupt the alt screen
	if cfg.Client.LogFile != "" {
		f, err := tea.LogToFile(cfg.Client.LogFile, "recipeai")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := tui.NewModel(cmd.Context(), kitchen, tui.WithMetrics(api.Metrics), tui.WithStartPage(page))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running console: %w", err)
	}
	return nil
}
