package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func errorCount(shell *Shell) int {
	n := 0
	for _, note := range shell.Notifications() {
		if note.Severity == SeverityError {
			n++
		}
	}
	return n
}

func requireLatest(t *testing.T, shell *Shell, message string, severity Severity) {
	t.Helper()
	latest, ok := shell.Latest()
	require.True(t, ok, "expected a notification")
	require.Equal(t, message, latest.Message)
	require.Equal(t, severity, latest.Severity)
}

func newTestShell() *Shell {
	return NewShell(WithNotificationLimit(50))
}
