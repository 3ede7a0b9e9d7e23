package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"outreach_backend/platform/logger"
)

type testEvent struct {
	BaseEvent
	Payload string
}

func (e testEvent) EventName() string { return "test.event" }

func TestPublishSync_DeliversInOrder(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var got []string
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, event Event) error {
		got = append(got, "first:"+event.(testEvent).Payload)
		return nil
	}))
	bus.Subscribe("test.event", HandlerFunc(func(_ context.Context, event Event) error {
		got = append(got, "second:"+event.(testEvent).Payload)
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent(), Payload: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 || got[0] != "first:a" || got[1] != "second:a" {
		t.Fatalf("unexpected delivery order: %v", got)
	}
}

func TestPublishSync_CombinesHandlerErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	wantErr := errors.New("boom")
	bus.Subscribe("test.event", HandlerFunc(func(context.Context, Event) error { return wantErr }))
	bus.Subscribe("test.event", HandlerFunc(func(context.Context, Event) error { return nil }))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected combined error to contain %v, got %v", wantErr, err)
	}
}

func TestPublish_AsyncDeliveryAndPanicIsolation(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))

	var wg sync.WaitGroup
	wg.Add(1)
	bus.Subscribe("test.event", HandlerFunc(func(context.Context, Event) error {
		panic("handler exploded")
	}))
	bus.Subscribe("test.event", HandlerFunc(func(context.Context, Event) error {
		wg.Done()
		return nil
	}))

	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("surviving handler was never invoked")
	}
}

func TestPublish_NoHandlersIsNoop(t *testing.T) {
	bus := NewInMemoryBus(logger.New("development"))
	bus.Publish(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("expected nil error for event without handlers, got %v", err)
	}
}
