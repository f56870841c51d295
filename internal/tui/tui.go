// Package tui provides a full-screen interactive view over a task store.
//
// The command loop remains the primary interface; the TUI is a convenience
// for browsing and toggling tasks without typing IDs. It drives the same
// in-memory store, so nothing here survives exit either.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idlewild/taskline/internal/ui"
	"github.com/idlewild/taskline/task"
)

// taskItem adapts task.Task to bubbles/list.Item.
type taskItem struct {
	task task.Task
}

func (i taskItem) Title() string {
	return fmt.Sprintf("%s %s", i.task.Status.Checkbox(), i.task.Title)
}
func (i taskItem) Description() string { return i.task.Description }
func (i taskItem) FilterValue() string { return i.task.Title }

// taskDelegate renders one task per line.
type taskDelegate struct {
	styles ui.Styles
}

func (d taskDelegate) Height() int                               { return 1 }
func (d taskDelegate) Spacing() int                              { return 0 }
func (d taskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	box := d.styles.Render(d.styles.Pending, it.task.Status.Checkbox())
	text := it.task.Title
	if it.task.Status == task.StatusComplete {
		box = d.styles.Render(d.styles.Success, it.task.Status.Checkbox())
		text = d.styles.Render(d.styles.Muted, text)
	}

	line := fmt.Sprintf("%-3d %s %s", it.task.ID, box, text)
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Render(d.styles.Accent, "> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type model struct {
	store  *task.Store
	list   list.Model
	styles ui.Styles

	// Inline add
	adding bool
	input  textinput.Model
	addErr string
}

// Run starts the full-screen task view and blocks until the user quits.
func Run(store *task.Store, styles ui.Styles) error {
	p := tea.NewProgram(newModel(store, styles), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(store *task.Store, styles ui.Styles) model {
	l := list.New(nil, taskDelegate{styles: styles}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{addBind, toggleBind, deleteBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	m := model{
		store:  store,
		list:   l,
		styles: styles,
	}
	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.Placeholder = "New task title..."
	m.input.CharLimit = task.MaxTitleLength
	m.refresh()
	return m
}

// refresh reloads list items and the header from the store.
func (m *model) refresh() {
	tasks := m.store.List()
	items := make([]list.Item, 0, len(tasks))
	done := 0
	for _, t := range tasks {
		if t.Status == task.StatusComplete {
			done++
		}
		items = append(items, taskItem{task: t})
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d",
		m.styles.Render(m.styles.Title, "Tasks"),
		m.styles.Render(m.styles.Success, "done"), done,
		m.styles.Render(m.styles.Pending, "open"), len(tasks)-done,
	)
}

// selected returns the task under the cursor.
func (m *model) selected() (task.Task, bool) {
	item, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return task.Task{}, false
	}
	return item.task, true
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		height := size.Height - 2
		if m.adding {
			height -= 4
		}
		m.list.SetSize(size.Width-2, height)
		return m, nil
	}

	if m.adding {
		var cmd tea.Cmd
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "enter":
				if _, err := m.store.Add(m.input.Value(), ""); err != nil {
					m.addErr = err.Error()
					return m, nil
				}
				m.input.SetValue("")
				m.input.Blur()
				m.adding = false
				m.addErr = ""
				m.refresh()
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Let list filtering capture keys while active.
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "q", "esc":
				return m, tea.Quit
			case " ":
				if t, ok := m.selected(); ok {
					if t.Status == task.StatusComplete {
						m.store.Incomplete(t.ID)
					} else {
						m.store.Complete(t.ID)
					}
					index := m.list.Index()
					m.refresh()
					m.list.Select(index)
				}
				return m, nil
			case "d":
				if t, ok := m.selected(); ok {
					m.store.Delete(t.ID)
					m.refresh()
				}
				return m, nil
			case "a":
				m.adding = true
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	content := m.list.View()
	if m.adding {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		title := "Add task"
		if m.addErr != "" {
			title += ": " + m.styles.Render(m.styles.Error, m.addErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.input.View())
	}
	return content
}
