package quill_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/quillkit/quill"
)

// Example_basic demonstrates opening a collection, saving a note through an
// editing session, and listing what was persisted.
func Example_basic() {
	ctx := context.Background()

	// The memory adapter keeps everything in-process; the file and sqlite
	// adapters persist the same way given a directory or database path.
	notes, err := quill.New(ctx, "", quill.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}

	// 1. Draft a new note. The session decides whether there is anything
	// worth saving when editing finishes.
	session := quill.NewSession(nil)
	note, save := session.Finish("Groceries", "milk, eggs")
	if save {
		if err := notes.Upsert(ctx, note); err != nil {
			log.Fatal(err)
		}
	}

	// 2. Edit an existing note. An unchanged result is discarded.
	session = quill.NewSession(&note)
	if _, save = session.Finish("Groceries", "milk, eggs"); !save {
		fmt.Println("nothing changed, nothing saved")
	}

	for _, n := range notes.Search("groc") {
		fmt.Printf("%s: %s\n", n.Title, n.Content)
	}
	// Output:
	// nothing changed, nothing saved
	// Groceries: milk, eggs
}

// Example_subscribe demonstrates observing collection changes.
func Example_subscribe() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notes, err := quill.New(ctx, "", quill.WithAdapter("memory"))
	if err != nil {
		log.Fatal(err)
	}

	events, err := notes.Subscribe(ctx, "todo-*")
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now()
	_ = notes.Upsert(ctx, quill.Note{ID: "journal-1", Title: "Journal", UpdatedAt: now})
	_ = notes.Upsert(ctx, quill.Note{ID: "todo-1", Title: "Chores", UpdatedAt: now})

	e := <-events
	fmt.Println(e.String())
	// Output:
	// CREATE todo-1
}
