package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/taskerdev/tasker/internal/task"
)

func TestPrintTaskTable(t *testing.T) {
	now := time.Now()
	due := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: 1, Name: "Buy milk", Priority: 2, Created: now, Due: &due},
		{ID: 2, Name: "Call Bob", Priority: 3, Created: now},
	}

	var buf bytes.Buffer
	printTaskTable(&buf, tasks)

	want := strings.Join([]string{
		"ID   Age  Due Date   Priority   Task",
		"--   ---  --------   --------   ----",
		"1    0    12/25/2025 2         Buy milk",
		"2    0    -          3         Call Bob",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("table output:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintTaskTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	printTaskTable(&buf, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("empty table: got %d lines, want header only (2)", len(lines))
	}
}

func TestPrintReportTable(t *testing.T) {
	created := time.Date(2025, time.January, 2, 15, 4, 5, 0, time.UTC)
	completed := time.Date(2025, time.January, 3, 9, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: 1, Name: "Buy milk", Priority: 2, Created: created, Completed: &completed},
		{ID: 2, Name: "Call Bob", Priority: 1, Created: created},
	}

	var buf bytes.Buffer
	printReportTable(&buf, tasks)
	out := buf.String()

	if !strings.Contains(out, "Created") || !strings.Contains(out, "Completed") {
		t.Errorf("report header missing timestamp columns:\n%s", out)
	}
	// Name column is padded to 20 characters.
	if !strings.Contains(out, "Buy milk             Thu Jan 02 15:04:05 UTC 2025") {
		t.Errorf("report row layout wrong:\n%s", out)
	}
	if !strings.Contains(out, "Fri Jan 03 09:00:00 UTC 2025") {
		t.Errorf("completed timestamp missing:\n%s", out)
	}
	// Open tasks show "-" in the completed column.
	if !strings.Contains(out, "Thu Jan 02 15:04:05 UTC 2025   -") {
		t.Errorf("open task completed column wrong:\n%s", out)
	}
}
