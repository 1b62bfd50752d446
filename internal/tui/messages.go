package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// doneMsg reports that a page operation started under mount has finished
type doneMsg struct {
	mount   uint64
	op      string
	err     error
	payload interface{}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// runner starts page operations bound to the mount that was current when
// the view was created
type runner struct {
	ctx   context.Context
	mount uint64
}

func (r runner) do(op string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return doneMsg{mount: r.mount, op: op, err: fn(r.ctx)}
	}
}

func (r runner) doValue(op string, fn func(ctx context.Context) (interface{}, error)) tea.Cmd {
	return func() tea.Msg {
		v, err := fn(r.ctx)
		return doneMsg{mount: r.mount, op: op, err: err, payload: v}
	}
}

// cursor is a clamped index into a list
type cursor int

func (c *cursor) move(delta, n int) {
	*c += cursor(delta)
	c.clamp(n)
}

func (c *cursor) clamp(n int) {
	if int(*c) >= n {
		*c = cursor(n - 1)
	}
	if *c < 0 {
		*c = 0
	}
}

func (c cursor) at(i int) bool { return int(c) == i }
