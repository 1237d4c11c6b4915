// Package tui is the terminal client: a todo table and a create/edit
// modal kept in sync through the event bus, the same contract the web
// table and form dialog followed.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"todoweb/internal/client"
	"todoweb/internal/eventbus"
	"todoweb/internal/model"
)

type (
	sessionMsg struct {
		user model.User
		err  error
	}
	todosLoadedMsg struct {
		todos []model.Todo
		err   error
	}
	todosChangedMsg struct{}
	editFetchedMsg  struct {
		todo model.Todo
		err  error
	}
	savedMsg struct {
		err error
	}
	deletedMsg struct {
		err error
	}
	loggedOutMsg struct{}
)

// todoItem adapts model.Todo to bubbles/list.Item.
type todoItem struct {
	todo model.Todo
}

func (i todoItem) Title() string       { return i.todo.Title }
func (i todoItem) Description() string { return i.todo.Text }
func (i todoItem) FilterValue() string { return i.todo.Title }

func (i todoItem) due() string {
	if i.todo.EndTime == nil {
		return "no deadline"
	}
	return i.todo.EndTime.Format(dateLayout)
}

// Single-line item rendering: "title  due".
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(todoItem)
	line := fmt.Sprintf("%s  %s", it.todo.Title, mutedStyle.Render(it.due()))
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type App struct {
	api *client.Client
	bus *eventbus.Bus

	user  model.User
	login loginModel

	route Route
	list  list.Model
	form  *formModel

	confirmDelete string // id pending delete confirmation
	errMsg        string
	width, height int
}

func newApp(api *client.Client, bus *eventbus.Bus, initial Route) *App {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return &App{
		api:   api,
		bus:   bus,
		login: newLogin(),
		route: initial,
		list:  l,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

// --- commands -----------------------------------------------------------

func (a *App) loadTodosCmd() tea.Cmd {
	return func() tea.Msg {
		todos, err := a.api.ListTodos(context.Background())
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (a *App) fetchEditCmd(id string) tea.Cmd {
	return func() tea.Msg {
		todo, err := a.api.GetTodo(context.Background(), id)
		return editFetchedMsg{todo: todo, err: err}
	}
}

// saveCmd performs the mutation and, on success, broadcasts the change
// before the modal closes so every mounted list refreshes.
func (a *App) saveCmd(form formModel, input client.TodoInput) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if form.mode == formCreate {
			_, err = a.api.CreateTodo(ctx, input)
		} else {
			_, err = a.api.UpdateTodo(ctx, form.id, input)
		}
		if err == nil {
			a.bus.Publish(ctx, eventbus.EventTodoChanged, nil)
		}
		return savedMsg{err: err}
	}
}

func (a *App) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{err: a.api.DeleteTodo(context.Background(), id)}
	}
}

func (a *App) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		_ = a.api.Logout(context.Background())
		return loggedOutMsg{}
	}
}

// navigate applies a route change. Opening an edit fetches the item
// first; a miss simply renders no modal.
func (a *App) navigate(route Route) tea.Cmd {
	a.route = route
	a.errMsg = ""

	switch route.Kind {
	case RouteCreating:
		f := newCreateForm()
		a.form = &f
		return nil
	case RouteEditing:
		a.form = nil
		return a.fetchEditCmd(route.EditID)
	default:
		a.form = nil
		return a.loadTodosCmd()
	}
}

// --- update -------------------------------------------------------------

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.list.SetSize(msg.Width, msg.Height-4)
		return a, nil

	case sessionMsg:
		if msg.err != nil {
			a.login.errMsg = apiMessage(msg.err)
			a.login.busy = false
			return a, nil
		}
		a.user = msg.user
		return a, a.navigate(a.route)

	case todosLoadedMsg:
		if msg.err != nil {
			a.errMsg = apiMessage(msg.err)
			return a, nil
		}
		items := make([]list.Item, 0, len(msg.todos))
		for _, t := range msg.todos {
			items = append(items, todoItem{todo: t})
		}
		a.errMsg = ""
		return a, a.list.SetItems(items)

	case todosChangedMsg:
		return a, a.loadTodosCmd()

	case editFetchedMsg:
		if a.route.Kind != RouteEditing {
			return a, nil
		}
		if msg.err != nil {
			// Nothing to edit: close the modal instead of showing a
			// broken form.
			return a, a.navigate(Route{Kind: RouteClosed})
		}
		f := newEditForm(msg.todo)
		a.form = &f
		return a, nil

	case savedMsg:
		if a.form != nil {
			a.form.saving = false
			if msg.err != nil {
				a.form.errMsg = apiMessage(msg.err)
				return a, nil
			}
		}
		return a, a.navigate(Route{Kind: RouteClosed})

	case deletedMsg:
		a.confirmDelete = ""
		if msg.err != nil {
			a.errMsg = apiMessage(msg.err)
			return a, nil
		}
		// The deleting view already holds the list; reload directly.
		return a, a.loadTodosCmd()

	case loggedOutMsg:
		a.user = model.User{}
		a.login = newLogin()
		a.form = nil
		a.route = Route{Kind: RouteClosed}
		return a, nil
	}

	if a.user.ID == "" {
		return a.updateLogin(msg)
	}
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a.updateList(msg)
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			// Cancel always navigates back to the base view.
			return a, a.navigate(Route{Kind: RouteClosed})
		case "enter":
			input, ok := a.form.validate()
			if !ok {
				return a, nil
			}
			a.form.saving = true
			return a, a.saveCmd(*a.form, input)
		case "ctrl+c":
			return a, tea.Quit
		}
	}

	form, cmd := a.form.update(msg)
	a.form = &form
	return a, cmd
}

func (a *App) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		a.list, cmd = a.list.Update(msg)
		return a, cmd
	}

	if a.confirmDelete != "" {
		switch key.String() {
		case "y":
			return a, a.deleteCmd(a.confirmDelete)
		default:
			a.confirmDelete = ""
			return a, nil
		}
	}

	switch key.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "c":
		return a, a.navigate(Route{Kind: RouteCreating})
	case "e":
		if it, ok := a.list.SelectedItem().(todoItem); ok {
			return a, a.navigate(Route{Kind: RouteEditing, EditID: it.todo.ID})
		}
		return a, nil
	case "d":
		if it, ok := a.list.SelectedItem().(todoItem); ok {
			a.confirmDelete = it.todo.ID
		}
		return a, nil
	case "r":
		return a, a.loadTodosCmd()
	case "L":
		return a, a.logoutCmd()
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// --- view ---------------------------------------------------------------

func (a *App) View() string {
	if a.user.ID == "" {
		return a.login.view()
	}
	if a.form != nil {
		return a.form.view()
	}

	var b strings.Builder
	b.WriteString(accentStyle.Render("signed in as "+a.user.UserName) + "\n")
	b.WriteString(a.list.View() + "\n")
	switch {
	case a.confirmDelete != "":
		b.WriteString(errorStyle.Render("delete this todo? y/n"))
	case a.errMsg != "":
		b.WriteString(errorStyle.Render(a.errMsg))
	default:
		b.WriteString(helpStyle.Render("c new · e edit · d delete · r reload · L logout · q quit"))
	}
	return b.String()
}

func apiMessage(err error) string {
	if apiErr, ok := err.(*client.APIError); ok {
		return apiErr.Message
	}
	return "something went wrong, try again"
}

// Run wires the bus to the program and blocks until the UI exits. Any
// publish of a todo change re-renders every mounted list.
func Run(api *client.Client, bus *eventbus.Bus, initial Route) error {
	app := newApp(api, bus, initial)
	p := tea.NewProgram(app, tea.WithAltScreen())

	bus.Subscribe(eventbus.EventTodoChanged, func(ctx context.Context, e eventbus.Event) {
		p.Send(todosChangedMsg{})
	})

	_, err := p.Run()
	return err
}
