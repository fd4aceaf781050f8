// Package task implements the task entity and the file-backed task store.
//
// A Store owns the full collection of tasks for one command invocation: it
// loads the backing file when opened, mutates the in-memory sequence, and
// rewrites the whole file after every mutation. No file handle is held
// across operations and no locking is performed; two simultaneous
// invocations against the same file are last-writer-wins.
//
// The backing file is a single JSON document:
//
//	{
//	  "schema_version": 1,
//	  "next_id": 4,
//	  "tasks": [
//	    {
//	      "id": 1,
//	      "name": "Buy milk",
//	      "priority": 2,
//	      "created": "2025-12-01T09:30:00.000000001-05:00",
//	      "due": "2025-12-25T00:00:00Z",
//	      "completed": "2025-12-20T18:12:44.000000001-05:00"
//	    }
//	  ]
//	}
//
// Tasks are stored in insertion order; sorting happens only on read, over a
// copy. A missing file is an empty store. A file that exists but cannot be
// decoded, or that fails validation against the embedded JSON Schema, is
// reported as a *CorruptStoreError rather than silently reset.
//
// Task ids come from the persisted next_id counter, so an id is never
// reused after its task is deleted. Files written without next_id derive
// the counter from the highest existing id on first load.
package task
