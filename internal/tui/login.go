package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel asks for a username; the only credential there is.
type loginModel struct {
	input  textinput.Model
	errMsg string
	busy   bool
}

func newLogin() loginModel {
	input := textinput.New()
	input.Placeholder = "username"
	input.CharLimit = 30
	input.Focus()
	return loginModel{input: input}
}

func (a *App) loginCmd(userName string, register bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if register {
			user, err := a.api.Register(ctx, userName)
			return sessionMsg{user: user, err: err}
		}
		user, err := a.api.Login(ctx, userName)
		return sessionMsg{user: user, err: err}
	}
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		a.login.input, cmd = a.login.input.Update(msg)
		return a, cmd
	}

	if a.login.busy {
		if key.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit
	case "enter", "ctrl+n":
		userName := strings.TrimSpace(a.login.input.Value())
		if userName == "" {
			a.login.errMsg = "enter a username"
			return a, nil
		}
		a.login.busy = true
		a.login.errMsg = ""
		return a, a.loginCmd(userName, key.String() == "ctrl+n")
	}

	var cmd tea.Cmd
	a.login.input, cmd = a.login.input.Update(msg)
	return a, cmd
}

func (l loginModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("todoweb") + "\n\n")
	b.WriteString(l.input.View() + "\n\n")
	switch {
	case l.busy:
		b.WriteString(mutedStyle.Render("signing in..."))
	case l.errMsg != "":
		b.WriteString(errorStyle.Render(l.errMsg))
	default:
		b.WriteString(helpStyle.Render("enter log in · ctrl+n register · esc quit"))
	}
	return modalStyle.Render(b.String())
}
