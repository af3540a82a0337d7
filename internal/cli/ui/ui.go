package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"TodoKeeper/internal/cli/model"
	"TodoKeeper/internal/cli/service"
)

// listItem adapts a server todo to bubbles/list.Item.
type listItem struct {
	todo model.Todo
}

func (i listItem) Title() string       { return i.todo.Text }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Text }

type todosMsg []model.Todo

type errMsg struct{ err error }

// Model — интерактивный список задач поверх REST-клиента.
type Model struct {
	client *service.TodoClient
	list   list.Model

	// Inline add
	adding bool
	ti     textinput.Model

	status string
}

// todoDelegate renders a todo as a single line with urgency colors.
type todoDelegate struct{}

func (d todoDelegate) Height() int                               { return 1 }
func (d todoDelegate) Spacing() int                              { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Text
	if it.todo.IsComplete {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", box, text)
	if it.todo.DueDate != nil {
		line += "  " + dueStyleFor(*it.todo.DueDate).Render(formatDue(*it.todo.DueDate))
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// dueStyleFor повторяет цветовую логику веб-версии.
func dueStyleFor(due time.Time) lipgloss.Style {
	diff := time.Until(due)
	switch {
	case diff < 0:
		return overdueStyle
	case diff < 24*time.Hour:
		return soonStyle
	default:
		return laterStyle
	}
}

func formatDue(due time.Time) string {
	return due.Local().Format("Jan 2, 15:04")
}

// Run запускает интерактивный список и блокирует до выхода.
func Run(client *service.TodoClient) error {
	l := list.New(nil, todoDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Todos")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.HelpStyle = helpStyle
	l.SetStatusBarItemName("todo", "todos")

	toggleBind := key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle"))
	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	refreshBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, delBind, refreshBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New todo..."
	ti.CharLimit = 200

	m := Model{client: client, list: l, ti: ti}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.fetchCmd()
}

func (m Model) fetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		todos, err := client.Fetch()
		if err != nil {
			return errMsg{err}
		}
		return todosMsg(todos)
	}
}

// mutateCmd выполняет мутацию и перечитывает список с сервера:
// актуальный порядок по сроку знает только сервер.
func (m Model) mutateCmd(mutate func() error) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := mutate(); err != nil {
			return errMsg{err}
		}
		todos, err := client.Fetch()
		if err != nil {
			return errMsg{err}
		}
		return todosMsg(todos)
	}
}

func (m Model) selected() (model.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return model.Todo{}, false
	}
	return it.todo, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case todosMsg:
		items := make([]list.Item, 0, len(msg))
		for _, t := range msg {
			items = append(items, listItem{todo: t})
		}
		m.status = ""
		return m, m.list.SetItems(items)

	case errMsg:
		m.status = errStyle.Render(msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			switch msg.String() {
			case "enter":
				text := strings.TrimSpace(m.ti.Value())
				m.adding = false
				m.ti.Blur()
				m.ti.SetValue("")
				if text == "" {
					return m, nil
				}
				client := m.client
				return m, m.mutateCmd(func() error {
					_, err := client.Create(text, nil)
					return err
				})
			case "esc":
				m.adding = false
				m.ti.Blur()
				m.ti.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			return m, cmd
		}

		// не перехватываем клавиши во время фильтрации списка
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.fetchCmd()
		case "a":
			m.adding = true
			m.ti.Focus()
			return m, textinput.Blink
		case "enter", " ":
			if t, ok := m.selected(); ok {
				client := m.client
				return m, m.mutateCmd(func() error {
					_, err := client.Toggle(t)
					return err
				})
			}
			return m, nil
		case "d":
			if t, ok := m.selected(); ok {
				client := m.client
				return m, m.mutateCmd(func() error {
					_, err := client.Delete(t.ID)
					return err
				})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())
	b.WriteString("\n")
	if m.adding {
		b.WriteString(m.ti.View())
	} else if m.status != "" {
		b.WriteString(m.status)
	}
	return b.String()
}
