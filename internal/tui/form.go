package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoweb/internal/client"
	"todoweb/internal/model"
)

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

const (
	maxTitleLen = 30
	maxTextLen  = 100

	dateLayout = "2006-01-02"
)

// formModel is the create/edit modal. Its open state belongs to the
// route, not to the form itself.
type formModel struct {
	mode   formMode
	id     string
	inputs []textinput.Model // title, text, end time
	focus  int
	errMsg string
	saving bool
}

func newCreateForm() formModel {
	return newForm(formCreate, model.Todo{})
}

func newEditForm(todo model.Todo) formModel {
	return newForm(formEdit, todo)
}

func newForm(mode formMode, todo model.Todo) formModel {
	title := textinput.New()
	title.Placeholder = "title (required)"
	title.CharLimit = maxTitleLen
	title.SetValue(todo.Title)
	title.Focus()

	text := textinput.New()
	text.Placeholder = "details (optional)"
	text.CharLimit = maxTextLen
	text.SetValue(todo.Text)

	endTime := textinput.New()
	endTime.Placeholder = "due date YYYY-MM-DD (empty = none)"
	if todo.EndTime != nil {
		endTime.SetValue(todo.EndTime.Format(dateLayout))
	}

	return formModel{
		mode:   mode,
		id:     todo.ID,
		inputs: []textinput.Model{title, text, endTime},
	}
}

// validate mirrors the server-side rules so most mistakes are caught
// before the round trip.
func (f *formModel) validate() (client.TodoInput, bool) {
	title := strings.TrimSpace(f.inputs[0].Value())
	text := f.inputs[1].Value()
	due := strings.TrimSpace(f.inputs[2].Value())

	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		f.errMsg = "title is required and must be at most 30 characters"
		return client.TodoInput{}, false
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		f.errMsg = "details must be at most 100 characters"
		return client.TodoInput{}, false
	}

	input := client.TodoInput{Title: title, Text: text}
	if due != "" {
		if _, err := time.Parse(dateLayout, due); err != nil {
			f.errMsg = "due date must look like 2025-12-31"
			return client.TodoInput{}, false
		}
		input.EndTime = &due
	}

	f.errMsg = ""
	return input, true
}

func (f formModel) update(msg tea.Msg) (formModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return f, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *formModel) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f formModel) view() string {
	heading := "New todo"
	if f.mode == formEdit {
		heading = "Edit todo"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	for i, label := range []string{"Title", "Details", "Due"} {
		b.WriteString(mutedStyle.Render(label) + "\n")
		b.WriteString(f.inputs[i].View() + "\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(f.errMsg))
	}
	if f.saving {
		b.WriteString("\n" + mutedStyle.Render("saving..."))
	} else {
		b.WriteString("\n" + helpStyle.Render("enter save · esc cancel · tab next field"))
	}

	return modalStyle.Render(b.String())
}
