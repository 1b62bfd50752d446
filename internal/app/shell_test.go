package app

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePreferences struct {
	saved []bool
	err   error
}

func (f *fakePreferences) SaveDarkMode(dark bool) error {
	f.saved = append(f.saved, dark)
	return f.err
}

func TestShellNavigate(t *testing.T) {
	shell := NewShell()
	assert.Equal(t, PageDashboard, shell.CurrentPage())

	first := shell.Navigate(PageRecipes)
	second := shell.Navigate(PageDashboard)

	assert.Equal(t, PageDashboard, shell.CurrentPage())
	assert.False(t, shell.IsCurrent(first))
	assert.True(t, shell.IsCurrent(second))
	assert.Equal(t, "Upload Invoice", PageUploadInvoice.String())
}

func TestShellToggleThemePersists(t *testing.T) {
	prefs := &fakePreferences{}
	shell := NewShell(WithPreferences(prefs), WithDarkMode(true))
	assert.Equal(t, ThemeDark, shell.Theme())

	theme, err := shell.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	theme, err = shell.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
	assert.Equal(t, []bool{false, true}, prefs.saved)
}

func TestShellToggleThemeSaveFailureStillToggles(t *testing.T) {
	shell := NewShell(WithPreferences(&fakePreferences{err: errors.New("read-only")}))

	theme, err := shell.ToggleTheme()
	assert.Error(t, err)
	assert.Equal(t, ThemeDark, theme)
	assert.Equal(t, ThemeDark, shell.Theme())
}

func TestShellLoadingNests(t *testing.T) {
	shell := NewShell()
	shell.SetLoading(true)
	shell.SetLoading(true)
	shell.SetLoading(false)
	assert.True(t, shell.Loading())

	shell.SetLoading(false)
	shell.SetLoading(false)
	assert.False(t, shell.Loading())
}

func TestShellNotifications(t *testing.T) {
	shell := NewShell(WithNotificationLimit(2))

	_, ok := shell.Latest()
	assert.False(t, ok)

	shell.Notify("one", SeverityInfo)
	shell.Notify("two", SeverityWarning)
	shell.Notify("three", SeverityError)

	queue := shell.Notifications()
	require.Len(t, queue, 2)
	assert.Equal(t, "two", queue[0].Message)

	latest, ok := shell.Latest()
	require.True(t, ok)
	assert.Equal(t, "three", latest.Message)
	assert.Equal(t, SeverityError, latest.Severity)

	shell.Dismiss(latest.ID)
	latest, _ = shell.Latest()
	assert.Equal(t, "two", latest.Message)

	shell.DismissOlderThan(-time.Second)
	assert.Empty(t, shell.Notifications())
}

func TestFilterByName(t *testing.T) {
	names := []string{"Tomato", "potato", "Basil"}
	identity := func(s string) string { return s }

	assert.Equal(t, names, FilterByName(names, "", identity))
	assert.Equal(t, []string{"Tomato", "potato"}, FilterByName(names, "ATO", identity))
	assert.Equal(t, []string{"Basil"}, FilterByName(names, "basil", identity))
	assert.Empty(t, FilterByName(names, "xyz", identity))
}
