package task

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// SchemaVersion is the store file format version.
const SchemaVersion = 1

// storeFile is the on-disk store document.
type storeFile struct {
	SchemaVersion int    `json:"schema_version"`
	NextID        int    `json:"next_id"`
	Tasks         []Task `json:"tasks"`
}

// Store holds the ordered task sequence backed by a single JSON file.
// Every mutating operation rewrites the file before returning.
type Store struct {
	path   string
	nextID int
	tasks  []Task
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	skipValidation bool
}

// WithoutValidation skips JSON Schema validation on load. Undecodable
// JSON still fails with a *CorruptStoreError.
func WithoutValidation() Option {
	return func(o *openOptions) {
		o.skipValidation = true
	}
}

// Open loads the store backed by path. A missing file yields an empty
// store; a file that exists but cannot be decoded is a *CorruptStoreError.
func Open(path string, opts ...Option) (*Store, error) {
	var o openOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{path: path, nextID: 1}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task store: %w", err)
	}

	if !o.skipValidation {
		if err := validateStoreFile(data); err != nil {
			return nil, &CorruptStoreError{Path: path, Err: err}
		}
	}

	var doc storeFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptStoreError{Path: path, Err: err}
	}

	s.tasks = doc.Tasks
	s.nextID = doc.NextID
	if s.nextID < 1 {
		// Files written before next_id existed derive the counter once.
		s.nextID = 1
		for _, t := range s.tasks {
			if t.ID >= s.nextID {
				s.nextID = t.ID + 1
			}
		}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of tasks, completed included.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Save serializes the full task sequence with 2-space indentation,
// overwriting the backing file.
func (s *Store) Save() error {
	doc := storeFile{
		SchemaVersion: SchemaVersion,
		NextID:        s.nextID,
		Tasks:         s.tasks,
	}
	if doc.Tasks == nil {
		doc.Tasks = []Task{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal task store: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write task store: %w", err)
	}
	return nil
}

// Add creates a task with the next id, appends it, and persists. The id
// comes from a monotonic counter carried in the store file, so deleting a
// task never frees its id for reuse. A *ParseError from a malformed due
// date aborts before anything is persisted.
func (s *Store) Add(name string, priority int, due string) (int, error) {
	t, err := New(s.nextID, name, priority, due)
	if err != nil {
		return 0, err
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	if err := s.Save(); err != nil {
		return 0, err
	}
	return t.ID, nil
}

// Delete removes the task with the given id. An id that does not exist is
// a silent no-op; the file is rewritten either way.
func (s *Store) Delete(id int) error {
	kept := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return s.Save()
}

// MarkComplete marks the task with the given id complete and persists,
// returning true. It returns false, without touching the file, when no
// task has that id. An already-completed task keeps its original
// completion time.
func (s *Store) MarkComplete(id int) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].MarkComplete()
			if err := s.Save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// List returns the open tasks, sorted. With terms given, only tasks whose
// name contains at least one term (case-insensitive) are kept. Read-only:
// the result is a copy and nothing is persisted.
func (s *Store) List(terms ...string) []Task {
	var out []Task
	for _, t := range s.tasks {
		if t.IsCompleted() {
			continue
		}
		if len(terms) > 0 && !t.MatchesAny(terms) {
			continue
		}
		out = append(out, t)
	}
	sortTasks(out)
	return out
}

// Report returns every task, completed or not, sorted. The stored
// insertion order is left untouched.
func (s *Store) Report() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	sortTasks(out)
	return out
}

// sortTasks orders by due date ascending with missing due dates last, then
// priority descending. The sort is stable, so remaining ties keep
// insertion order.
func sortTasks(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, dj := tasks[i].Due, tasks[j].Due
		switch {
		case di == nil && dj == nil:
			// Fall through to priority.
		case di == nil:
			return false
		case dj == nil:
			return true
		case !di.Equal(*dj):
			return di.Before(*dj)
		}
		return tasks[i].Priority > tasks[j].Priority
	})
}
