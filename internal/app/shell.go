package app

import (
	"log"
	"sync"
	"time"
)

// Page identifies one of the console's screens
type Page int

const (
	PageDashboard Page = iota
	PageIngredients
	PageRecipes
	PageCreateRecipe
	PageUploadInvoice
	PageFavorites
)

// Pages lists every page in navigation order
var Pages = []Page{PageDashboard, PageIngredients, PageRecipes, PageCreateRecipe, PageUploadInvoice, PageFavorites}

func (p Page) String() string {
	switch p {
	case PageDashboard:
		return "Dashboard"
	case PageIngredients:
		return "Ingredients"
	case PageRecipes:
		return "Recipes"
	case PageCreateRecipe:
		return "Create Recipe"
	case PageUploadInvoice:
		return "Upload Invoice"
	case PageFavorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

// Theme is the colour mode of the console
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Severity tags a notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one user-facing message
type Notification struct {
	ID       int64
	Message  string
	Severity Severity
	At       time.Time
}

// Notifier surfaces messages to the user
type Notifier interface {
	Notify(message string, severity Severity)
}

// LoadingIndicator shows that a request is in flight
type LoadingIndicator interface {
	SetLoading(loading bool)
}

// Host is what every page needs from the shell
type Host interface {
	Notifier
	LoadingIndicator
}

// PreferenceStore persists the theme choice
type PreferenceStore interface {
	SaveDarkMode(dark bool) error
}

// DefaultNotificationLimit caps the notification queue
const DefaultNotificationLimit = 5

// Shell owns navigation, theme, the loading flag and the notification queue.
// It is safe for concurrent use.
type Shell struct {
	mu      sync.Mutex
	page    Page
	mount   uint64
	theme   Theme
	loading int
	queue   []Notification
	nextID  int64
	limit   int
	prefs   PreferenceStore
}

// ShellOption customises a Shell
type ShellOption func(*Shell)

// WithPreferences persists theme changes to store
func WithPreferences(store PreferenceStore) ShellOption {
	return func(s *Shell) { s.prefs = store }
}

// WithDarkMode sets the initial theme
func WithDarkMode(dark bool) ShellOption {
	return func(s *Shell) {
		if dark {
			s.theme = ThemeDark
		}
	}
}

// WithNotificationLimit caps how many notifications are kept
func WithNotificationLimit(n int) ShellOption {
	return func(s *Shell) {
		if n > 0 {
			s.limit = n
		}
	}
}

// NewShell creates a shell showing the dashboard
func NewShell(opts ...ShellOption) *Shell {
	s := &Shell{page: PageDashboard, limit: DefaultNotificationLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Navigate switches to page p and returns the new mount number. Results
// belonging to an older mount should be discarded.
func (s *Shell) Navigate(p Page) uint64 {
	s.mu.Lock()
	s.page = p
	s.mount++
	mount := s.mount
	s.mu.Unlock()
	return mount
}

// CurrentPage returns the active page
func (s *Shell) CurrentPage() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// IsCurrent reports whether mount is still the active one
func (s *Shell) IsCurrent(mount uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mount == mount
}

// Theme returns the current theme
func (s *Shell) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips between light and dark and persists the choice.
// The theme changes even when persisting fails.
func (s *Shell) ToggleTheme() (Theme, error) {
	s.mu.Lock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	theme := s.theme
	prefs := s.prefs
	s.mu.Unlock()

	if prefs == nil {
		return theme, nil
	}
	if err := prefs.SaveDarkMode(theme == ThemeDark); err != nil {
		log.Printf("Failed to save theme preference: %v", err)
		return theme, err
	}
	return theme, nil
}

// SetLoading raises or lowers the loading flag. Calls nest, so the flag
// stays up until every SetLoading(true) has been matched.
func (s *Shell) SetLoading(loading bool) {
	s.mu.Lock()
	if loading {
		s.loading++
	} else if s.loading > 0 {
		s.loading--
	}
	s.mu.Unlock()
}

// Loading reports whether any request is in flight
func (s *Shell) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Notify queues a message, dropping the oldest beyond the limit
func (s *Shell) Notify(message string, severity Severity) {
	s.mu.Lock()
	s.nextID++
	s.queue = append(s.queue, Notification{ID: s.nextID, Message: message, Severity: severity, At: time.Now()})
	if len(s.queue) > s.limit {
		s.queue = append([]Notification(nil), s.queue[len(s.queue)-s.limit:]...)
	}
	s.mu.Unlock()
}

// Notifications returns the queued notifications, oldest first
func (s *Shell) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.queue...)
}

// Latest returns the most recent notification
func (s *Shell) Latest() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return Notification{}, false
	}
	return s.queue[len(s.queue)-1], true
}

// Dismiss removes the notification with the given id
func (s *Shell) Dismiss(id int64) {
	s.mu.Lock()
	for i, n := range s.queue {
		if n.ID == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
}

// DismissOlderThan drops notifications shown for longer than d
func (s *Shell) DismissOlderThan(d time.Duration) {
	cutoff := time.Now().Add(-d)
	s.mu.Lock()
	kept := s.queue[:0]
	for _, n := range s.queue {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	s.queue = kept
	s.mu.Unlock()
}
