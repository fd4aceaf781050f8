// Package ui provides an optional terminal viewer for the task list.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskerdev/tasker/internal/task"
)

// filter selects which tasks the viewer shows.
type filter int

const (
	filterOpen filter = iota
	filterDone
	filterAll
)

// Run starts the read-only task viewer backed by the store file at path.
// The viewer reloads the file every second, so changes made by other
// invocations show up while it is open.
func Run(ctx context.Context, path string, opts ...task.Option) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newModel(path, opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// IsTTY reports whether f is a character device.
func IsTTY(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

type model struct {
	path     string
	openOpts []task.Option
	tasks    []task.Task
	loadErr  error
	filter   filter
	tick     time.Duration
}

type tickMsg time.Time

func newModel(path string, opts []task.Option) *model {
	return &model{
		path:     path,
		openOpts: opts,
		tick:     time.Second,
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh reloads the store file. Load errors are shown in the view
// instead of quitting, so a half-written file during an external update
// only blanks one tick.
func (m *model) refresh() {
	store, err := task.Open(m.path, m.openOpts...)
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	m.tasks = store.Report()
}

func (m *model) Init() tea.Cmd {
	m.refresh()
	return tickCmd(m.tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r", "f5":
			m.refresh()
			return m, nil
		case "1":
			m.filter = filterOpen
			return m, nil
		case "2":
			m.filter = filterDone
			return m, nil
		case "0":
			m.filter = filterAll
			return m, nil
		}
	case tickMsg:
		m.refresh()
		return m, tickCmd(m.tick)
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tasker"))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %s", m.path)))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("load error: %v", m.loadErr)))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("r refresh · q quit"))
		b.WriteString("\n")
		return b.String()
	}

	visible := m.visibleTasks()
	if len(visible) == 0 {
		b.WriteString(headerStyle.Render(fmt.Sprintf("No %s tasks.", m.filterLabel())))
		b.WriteString("\n")
	} else {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-4s %-10s %-8s %s", "ID", "Age", "Due", "Pri", "Task")))
		b.WriteString("\n")
		for _, t := range visible {
			b.WriteString(m.renderTask(t))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("showing %s · 1 open · 2 done · 0 all · r refresh · q quit", m.filterLabel())))
	b.WriteString("\n")
	return b.String()
}

func (m *model) visibleTasks() []task.Task {
	var out []task.Task
	for _, t := range m.tasks {
		switch m.filter {
		case filterOpen:
			if t.IsCompleted() {
				continue
			}
		case filterDone:
			if !t.IsCompleted() {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func (m *model) filterLabel() string {
	switch m.filter {
	case filterOpen:
		return "open"
	case filterDone:
		return "done"
	}
	return "all"
}

func (m *model) renderTask(t task.Task) string {
	line := fmt.Sprintf("%-4d %-4d %-10s %-8d %s", t.ID, t.Age(), t.DueString(), t.Priority, t.Name)
	switch {
	case t.IsCompleted():
		return doneStyle.Render(line)
	case t.Due != nil && t.Due.Before(time.Now()):
		return overdueStyle.Render(line)
	}
	return line
}
