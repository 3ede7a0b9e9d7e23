package keylock

import (
	"sync"
	"testing"
	"time"
)

func TestSameKeySerializes(t *testing.T) {
	kl := New()

	const workers = 16
	var counter int
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			kl.Lock("lead-1")
			defer kl.Unlock("lead-1")
			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	if counter != workers {
		t.Fatalf("expected %d increments, got %d (lost updates under contention)", workers, counter)
	}
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	kl := New()
	kl.Lock("a")
	defer kl.Unlock("a")

	done := make(chan struct{})
	go func() {
		kl.Lock("b")
		kl.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestEntriesAreReleased(t *testing.T) {
	kl := New()
	kl.Lock("x")
	kl.Unlock("x")

	kl.mu.Lock()
	defer kl.mu.Unlock()
	if len(kl.locks) != 0 {
		t.Fatalf("expected lock table to be empty, has %d entries", len(kl.locks))
	}
}
