package testsupport

import (
	"context"
	"testing"

	"irweave/internal/config"
	"irweave/internal/queue"
)

// MustOpenStore opens a queue.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *queue.Store {
	t.Helper()

	store, err := queue.Open(cfg)
	if err != nil {
		t.Fatalf("queue.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// Enqueue adds a capture source to the queue for tests.
func Enqueue(t testing.TB, store *queue.Store, sourcePath string) *queue.Item {
	t.Helper()

	item, err := store.Add(context.Background(), sourcePath)
	if err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return item
}
