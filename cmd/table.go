package cmd

import (
	"fmt"
	"io"

	"github.com/taskerdev/tasker/internal/task"
)

// printTaskTable prints the fixed-width table used by -list and -query.
func printTaskTable(w io.Writer, tasks []task.Task) {
	fmt.Fprintln(w, "ID   Age  Due Date   Priority   Task")
	fmt.Fprintln(w, "--   ---  --------   --------   ----")
	for _, t := range tasks {
		fmt.Fprintf(w, "%-4d %-3d  %-10s %-9d %s\n",
			t.ID, t.Age(), t.DueString(), t.Priority, t.Name)
	}
}

// printReportTable prints the full table with created and completed
// timestamps for every task.
func printReportTable(w io.Writer, tasks []task.Task) {
	fmt.Fprintln(w, "ID   Age  Due Date   Priority   Task                Created                       Completed")
	fmt.Fprintln(w, "--   ---  --------   --------   ----                ---------------------------   -------------------------")
	for _, t := range tasks {
		fmt.Fprintf(w, "%-4d %-3d  %-10s %-9d %-20s %-30s %s\n",
			t.ID, t.Age(), t.DueString(), t.Priority, t.Name, t.CreatedString(), t.CompletedString())
	}
}
