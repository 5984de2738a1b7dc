package notify

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// testReporter wires a Reporter to an in-process miniredis.
func testReporter(t *testing.T, ttl time.Duration) (*Reporter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewReporter(client, ttl), mr
}

func TestNotifyAndPending(t *testing.T) {
	r, _ := testReporter(t, DefaultTTL)
	ctx := context.Background()

	r.Success(ctx, "Category order saved.")
	r.Error(ctx, "Could not delete category.")

	pending, err := r.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending: got %d, want 2", len(pending))
	}

	kinds := map[Kind]string{}
	for _, n := range pending {
		kinds[n.Kind] = n.Message
	}
	if kinds[KindSuccess] != "Category order saved." {
		t.Errorf("success message: got %q", kinds[KindSuccess])
	}
	if kinds[KindError] != "Could not delete category." {
		t.Errorf("error message: got %q", kinds[KindError])
	}
}

func TestNotificationsExpire(t *testing.T) {
	r, mr := testReporter(t, DefaultTTL)
	ctx := context.Background()

	r.Success(ctx, "Category \"Sports\" saved.")

	pending, err := r.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending before expiry: got %d, want 1", len(pending))
	}

	// DefaultTTL is 3s; one second past it everything is gone.
	mr.FastForward(DefaultTTL + time.Second)

	pending, err = r.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending after expiry: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("pending after expiry: got %d, want 0", len(pending))
	}
}

func TestNotificationsAreIndependent(t *testing.T) {
	r, mr := testReporter(t, DefaultTTL)
	ctx := context.Background()

	r.Success(ctx, "first")
	mr.FastForward(2 * time.Second)
	r.Success(ctx, "second")
	mr.FastForward(2 * time.Second)

	// 4s in: the first (age 4s) expired, the second (age 2s) did not.
	pending, err := r.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending: got %d, want 1", len(pending))
	}
	if pending[0].Message != "second" {
		t.Errorf("message: got %q, want %q", pending[0].Message, "second")
	}
}

func TestPendingOrderedOldestFirst(t *testing.T) {
	r, _ := testReporter(t, time.Minute)
	ctx := context.Background()

	r.Notify(ctx, KindSuccess, "one")
	time.Sleep(5 * time.Millisecond)
	r.Notify(ctx, KindSuccess, "two")
	time.Sleep(5 * time.Millisecond)
	r.Notify(ctx, KindSuccess, "three")

	pending, err := r.Pending(ctx)
	if err != nil {
		t.Fatalf("Pending: %v", err)
	}
	want := []string{"one", "two", "three"}
	if len(pending) != len(want) {
		t.Fatalf("pending: got %d, want %d", len(pending), len(want))
	}
	for i, n := range pending {
		if n.Message != want[i] {
			t.Errorf("position %d: got %q, want %q", i, n.Message, want[i])
		}
	}
}

func TestDefaultTTLFallback(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	r := NewReporter(client, 0)
	if r.ttl != DefaultTTL {
		t.Errorf("ttl: got %v, want %v", r.ttl, DefaultTTL)
	}
}
