package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/app"
	"github.com/pageza/recipe-ai/internal/client"
	"github.com/pageza/recipe-ai/internal/tui"
)

var (
	showStats bool

	cfg     *config.Config
	api     *client.Client
	shell   *app.Shell
	kitchen *app.App
)

var rootCmd = &cobra.Command{
	Use:   "recipeai",
	Short: "Kitchen inventory and recipe console",
	Long: `recipeai manages a kitchen inventory and its recipes against the
recipe backend. Without a subcommand it opens the interactive console.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

// Execute runs the command tree under ctx. Statistics are printed even
// when the command failed.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	printStats(rootCmd.ErrOrStderr())
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false, "print API call statistics on exit")
	rootCmd.Flags().StringVarP(&startPage, "page", "p", "", "page to open (dashboard, ingredients, recipes, create, upload, favorites)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(ingredientsCmd)
	rootCmd.AddCommand(recipesCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(exportCmd)
}

// setup loads configuration and builds the client, shell and pages shared
// by every command
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return err
	}

	prefsFile := config.NewPreferenceFile(cfg.Client.PreferencesPath)
	prefs, err := prefsFile.Load()
	if err != nil {
		log.Printf("Ignoring unreadable preferences: %v", err)
	}

	api = client.NewFromConfig(cfg.Client)
	shell = app.NewShell(app.WithPreferences(prefsFile), app.WithDarkMode(prefs.DarkMode))
	kitchen = app.NewApp(shell, api, cfg.Client.CommitConcurrency)
	return nil
}

func printStats(w io.Writer) {
	if !showStats || api == nil {
		return
	}
	s := api.Metrics()
	fmt.Fprintf(w, "API calls: %d, errors: %d (%.1f%%), average latency: %s\n",
		s.Calls, s.Errors, s.ErrorRate(), s.AverageLatency().Round(time.Millisecond))
}

// report prints every pending notification styled by severity and passes
// err through so the command exits non-zero on failure
func report(cmd *cobra.Command, err error) error {
	printNotifications(cmd.OutOrStdout())
	return err
}

func printNotifications(w io.Writer) {
	st := tui.NewStyles(shell.Theme())
	for _, n := range shell.Notifications() {
		fmt.Fprintln(w, st.Notification(n))
		shell.Dismiss(n.ID)
	}
}

func styles() tui.Styles {
	return tui.NewStyles(shell.Theme())
}
