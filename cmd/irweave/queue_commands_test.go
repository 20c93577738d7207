package main

import (
	"context"
	"testing"

	"irweave/internal/queue"
	"irweave/internal/testsupport"
)

func TestQueueAddAndStatus(t *testing.T) {
	env := setupCLITestEnv(t)
	source := testsupport.WriteCapture(t, env.cfg, "tv.txt", testsupport.SampleCapture)

	out, _, err := runCLI(t, []string{"queue", "add", source}, env.configPath)
	if err != nil {
		t.Fatalf("queue add: %v", err)
	}
	requireContains(t, out, "Queued")

	out, _, err = runCLI(t, []string{"queue", "status"}, env.configPath)
	if err != nil {
		t.Fatalf("queue status: %v", err)
	}
	requireContains(t, out, "pending")
}

func TestQueueListFiltersByStatus(t *testing.T) {
	env := setupCLITestEnv(t)
	source := testsupport.WriteCapture(t, env.cfg, "tv.txt", testsupport.SampleCapture)
	testsupport.Enqueue(t, env.store, source)

	out, _, err := runCLI(t, []string{"queue", "list", "--status", "pending"}, env.configPath)
	if err != nil {
		t.Fatalf("queue list: %v", err)
	}
	requireContains(t, out, source)

	out, _, err = runCLI(t, []string{"queue", "list", "--status", "failed"}, env.configPath)
	if err != nil {
		t.Fatalf("queue list: %v", err)
	}
	requireContains(t, out, "Queue is empty")

	if _, _, err := runCLI(t, []string{"queue", "list", "--status", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestQueueRetryAndClear(t *testing.T) {
	env := setupCLITestEnv(t)
	ctx := context.Background()

	source := testsupport.WriteCapture(t, env.cfg, "tv.txt", testsupport.SampleCapture)
	item := testsupport.Enqueue(t, env.store, source)
	if _, err := env.store.NextPending(ctx); err != nil {
		t.Fatal(err)
	}
	if err := env.store.MarkFailed(ctx, item.ID, 1, "decode error"); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"queue", "retry"}, env.configPath)
	if err != nil {
		t.Fatalf("queue retry: %v", err)
	}
	requireContains(t, out, "Requeued 1 item(s)")

	got, err := env.store.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != queue.StatusPending {
		t.Fatalf("status = %q", got.Status)
	}

	out, _, err = runCLI(t, []string{"queue", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("queue clear: %v", err)
	}
	requireContains(t, out, "Removed 1 item(s)")
}
