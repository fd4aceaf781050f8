package task

import (
	"fmt"
	"strings"
	"time"
)

// DueLayout is the due-date format, both for input and display.
const DueLayout = "01/02/2006"

// TimestampLayout is the display format for created and completed times.
const TimestampLayout = "Mon Jan 02 15:04:05 MST 2006"

// Priority bounds. Higher is more urgent.
const (
	MinPriority = 1
	MaxPriority = 3
)

// Task represents a single to-do item.
type Task struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Priority  int        `json:"priority"`
	Created   time.Time  `json:"created"`
	Due       *time.Time `json:"due,omitempty"`
	Completed *time.Time `json:"completed,omitempty"`
}

// New constructs a task with created set to now and no completion time.
// due is optional MM/DD/YYYY text; malformed text returns a *ParseError.
func New(id int, name string, priority int, due string) (Task, error) {
	if name == "" {
		return Task{}, fmt.Errorf("task name is empty")
	}
	if priority < MinPriority || priority > MaxPriority {
		return Task{}, fmt.Errorf("priority must be between %d and %d, got %d", MinPriority, MaxPriority, priority)
	}

	t := Task{
		ID:       id,
		Name:     name,
		Priority: priority,
		Created:  time.Now(),
	}
	if due != "" {
		d, err := time.Parse(DueLayout, due)
		if err != nil {
			return Task{}, &ParseError{Input: due, Err: err}
		}
		t.Due = &d
	}
	return t, nil
}

// MarkComplete records the completion time. A task that is already
// completed keeps its original timestamp.
func (t *Task) MarkComplete() {
	if t.Completed != nil {
		return
	}
	now := time.Now()
	t.Completed = &now
}

// IsCompleted reports whether the task has a completion time.
func (t *Task) IsCompleted() bool {
	return t.Completed != nil
}

// Age returns the task age in whole days since creation, truncated.
func (t *Task) Age() int {
	return int(time.Since(t.Created).Hours() / 24)
}

// MatchesAny reports whether the task name contains at least one of the
// terms, case-insensitively.
func (t *Task) MatchesAny(terms []string) bool {
	name := strings.ToLower(t.Name)
	for _, q := range terms {
		if strings.Contains(name, strings.ToLower(q)) {
			return true
		}
	}
	return false
}

// DueString formats the due date as MM/DD/YYYY, or "-" when absent.
func (t *Task) DueString() string {
	if t.Due == nil {
		return "-"
	}
	return t.Due.Format(DueLayout)
}

// CreatedString formats the creation time for display.
func (t *Task) CreatedString() string {
	return t.Created.Format(TimestampLayout)
}

// CompletedString formats the completion time, or "-" for open tasks.
func (t *Task) CompletedString() string {
	if t.Completed == nil {
		return "-"
	}
	return t.Completed.Format(TimestampLayout)
}
