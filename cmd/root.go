// Package cmd implements the CLI command structure for tasker.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/taskerdev/tasker/internal/config"
	"github.com/taskerdev/tasker/internal/logging"
	"github.com/taskerdev/tasker/internal/task"
	"github.com/taskerdev/tasker/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the tasker CLI. Exactly one operation runs per invocation;
// when several operation flags are given, the first in precedence order
// (add, delete, done, list, query, report, tui) wins.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("tasker", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}

	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	add := fs.String("add", "", "Add a new task")
	priority := fs.Int("priority", 1, "Priority for -add (1, 2, or 3; higher is more urgent)")
	due := fs.String("due", "", `Due date for -add ("MM/DD/YYYY")`)
	del := fs.Int("delete", 0, "Delete a task by its id")
	done := fs.Int("done", 0, "Mark a task complete by its id")
	list := fs.Bool("list", false, "List open tasks")
	query := fs.Bool("query", false, "List open tasks whose name contains any of the trailing terms")
	report := fs.Bool("report", false, "List all tasks, completed included")
	tuiMode := fs.Bool("tui", false, "Open the interactive task viewer")

	file := fs.String("file", "", "Task store file (overrides config)")
	logLevel := fs.String("log-level", "", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *file != "" {
		cfg.StoreFile = *file
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		fmt.Printf("tasker version %s\n", Version)
		return nil
	}

	logger := logging.New(logging.Options{
		Level:           cfg.LogLevel,
		ReportTimestamp: cfg.LogTimestamps,
	})

	storePath := config.ExpandPath(cfg.StoreFile)
	var openOpts []task.Option
	if !cfg.Validate {
		openOpts = append(openOpts, task.WithoutValidation())
	}
	logger.Debug("using task store", "path", storePath, "validate", cfg.Validate)

	store, err := task.Open(storePath, openOpts...)
	if err != nil {
		return err
	}

	switch {
	case *add != "":
		id, err := store.Add(*add, *priority, *due)
		if err != nil {
			return err
		}
		logger.Debug("task created", "id", id)
		fmt.Printf("Created task %d\n", id)

	case *del != 0:
		if err := store.Delete(*del); err != nil {
			return err
		}
		fmt.Printf("Deleted task %d\n", *del)

	case *done != 0:
		ok, err := store.MarkComplete(*done)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("Completed task %d\n", *done)
		} else {
			fmt.Printf("Task %d not found\n", *done)
		}

	case *list:
		printTaskTable(os.Stdout, store.List())

	case *query:
		terms := fs.Args()
		if len(terms) == 0 {
			return fmt.Errorf("-query requires at least one search term")
		}
		printTaskTable(os.Stdout, store.List(terms...))

	case *report:
		printReportTable(os.Stdout, store.Report())

	case *tuiMode:
		return ui.Run(ctx, storePath, openOpts...)

	default:
		printUsage(fs, os.Stdout)
	}

	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Tasker - A personal task tracker")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasker [operation] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Operations (one per invocation):")
	fmt.Fprintln(w, `  -add "text"           Create a task (-priority and -due modify it)`)
	fmt.Fprintln(w, "  -delete id            Delete a task")
	fmt.Fprintln(w, "  -done id              Mark a task complete")
	fmt.Fprintln(w, "  -list                 List open tasks")
	fmt.Fprintln(w, "  -query term [term...] List open tasks matching any term")
	fmt.Fprintln(w, "  -report               List all tasks, completed included")
	fmt.Fprintln(w, "  -tui                  Open the interactive viewer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The task store path defaults to .tasker.json in the working directory")
	fmt.Fprintln(w, "and can be set in tasker.toml, with TASKER_FILE, or with -file.")
}
