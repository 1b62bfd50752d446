package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pageza/recipe-ai/internal/app"
)

type uploadView struct {
	page    *app.UploadPage
	run     runner
	cur     cursor
	path    textinput.Model
	editing bool
	results []app.CommitResult
}

func newUploadView(page *app.UploadPage, run runner) *uploadView {
	path := textinput.New()
	path.Prompt = "PDF: "
	path.Placeholder = "path/to/invoice.pdf"
	return &uploadView{page: page, run: run, path: path}
}

func (v *uploadView) init() tea.Cmd { return nil }

func (v *uploadView) update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(doneMsg); ok {
		if done.op == "commit" {
			if results, ok := done.payload.([]app.CommitResult); ok {
				v.results = results
			}
		}
		if done.op == "upload" {
			v.results = nil
		}
		v.cur.clamp(len(v.page.Items()))
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.editing {
			var cmd tea.Cmd
			v.path, cmd = v.path.Update(msg)
			return cmd
		}
		return nil
	}

	if v.editing {
		switch key.String() {
		case "esc":
			v.editing = false
			v.path.Blur()
			return nil
		case "enter":
			v.editing = false
			v.path.Blur()
			path := strings.TrimSpace(v.path.Value())
			return v.run.do("upload", func(ctx context.Context) error {
				if path != "" {
					if err := v.page.SelectPath(path); err != nil {
						return err
					}
				}
				return v.page.Upload(ctx)
			})
		}
		var cmd tea.Cmd
		v.path, cmd = v.path.Update(msg)
		return cmd
	}

	items := v.page.Items()
	switch key.String() {
	case "o":
		v.editing = true
		return v.path.Focus()
	case "up", "k":
		v.cur.move(-1, len(items))
	case "down", "j":
		v.cur.move(1, len(items))
	case " ", "space":
		if len(items) > 0 {
			v.page.Toggle(items[v.cur].Key())
		}
	case "c":
		return v.run.doValue("commit", func(ctx context.Context) (interface{}, error) {
			results, err := v.page.Commit(ctx)
			return results, err
		})
	}
	return nil
}

func (v *uploadView) render(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Heading.Render("Upload Invoice") + "\n")
	b.WriteString(v.path.View() + "\n")
	if f, ok := v.page.File(); ok {
		b.WriteString(st.Muted.Render(fmt.Sprintf("Selected: %s (%d bytes)", f.Name, len(f.Data))) + "\n")
	}
	b.WriteString(st.Muted.Render("Status: "+v.page.Status().String()) + "\n\n")

	items := v.page.Items()
	if len(items) > 0 {
		b.WriteString(st.Label.Render(fmt.Sprintf("Extracted Items (%d selected)", len(v.page.SelectedItems()))) + "\n")
	}
	for i, item := range items {
		check := "[ ]"
		if v.page.IsSelected(item.Key()) {
			check = "[x]"
		}
		kind := item.Category
		if kind == "" && item.IsProduce() {
			kind = "produce"
		}
		line := fmt.Sprintf("%s %-24s ×%-4d %s", check, item.Name, item.CommitQuantity(), kind)
		if v.cur.at(i) {
			b.WriteString(st.Cursor.Render("> "+line) + "\n")
		} else {
			b.WriteString(st.Item.Render("  "+line) + "\n")
		}
	}

	if len(v.results) > 0 {
		b.WriteString("\n" + st.Label.Render("Last Commit") + "\n")
		for _, r := range v.results {
			line := fmt.Sprintf("%-8s %s", r.Status, r.Item.Name)
			if r.Err != nil {
				b.WriteString(st.Severity(app.SeverityError).Render(line+": "+r.Err.Error()) + "\n")
			} else {
				b.WriteString(st.Item.Render(line) + "\n")
			}
		}
	}
	return b.String()
}

func (v *uploadView) help() string {
	if v.editing {
		return "enter upload • esc cancel"
	}
	return "o open PDF • ↑/↓ move • space toggle • c add selected to inventory"
}

func (v *uploadView) capturing() bool { return v.editing }
