package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestCoordinatorFIFOOrder(t *testing.T) {
	c := NewCoordinator("test")
	defer c.Close()

	var mu sync.Mutex
	order := []int{}

	pendings := make([]*Pending, 0, 5)
	for i := 0; i < 5; i++ {
		i := i
		p, err := c.Submit(context.Background(), func(context.Context) (any, error) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return i, nil
		})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		pendings = append(pendings, p)
	}

	for i, p := range pendings {
		value, err := p.Wait(context.Background())
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
		if value.(int) != i {
			t.Errorf("request %d returned %v", i, value)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for i, got := range order {
		if got != i {
			t.Fatalf("execution order = %v, want ascending", order)
		}
	}
}

func TestCoordinatorSingleFlight(t *testing.T) {
	c := NewCoordinator("test")
	defer c.Close()

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	secondStarted := make(chan struct{})

	p1, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		close(firstStarted)
		<-release
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	p2, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		close(secondStarted)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	<-firstStarted
	select {
	case <-secondStarted:
		t.Fatal("second request started while the first was in flight")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	if _, err := p1.Wait(context.Background()); err != nil {
		t.Errorf("first request failed: %v", err)
	}
	if _, err := p2.Wait(context.Background()); err != nil {
		t.Errorf("second request failed: %v", err)
	}
}

func TestCoordinatorCancelPending(t *testing.T) {
	c := NewCoordinator("test")
	defer c.Close()

	started := make(chan struct{})
	release := make(chan struct{})

	blocker, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		close(started)
		<-release
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-started

	queued, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if !c.CancelPending(queued) {
		t.Error("CancelPending returned false for a queued request")
	}
	if _, err := queued.Wait(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled request returned %v, want context.Canceled", err)
	}
	if c.CancelPending(queued) {
		t.Error("CancelPending succeeded twice for the same request")
	}

	close(release)
	if _, err := blocker.Wait(context.Background()); err != nil {
		t.Errorf("blocker failed: %v", err)
	}
	if c.CancelPending(blocker) {
		t.Error("CancelPending succeeded for a finished request")
	}
}

func TestCoordinatorCloseRejectsQueued(t *testing.T) {
	c := NewCoordinator("test")

	started := make(chan struct{})
	release := make(chan struct{})

	blocker, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		close(started)
		<-release
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-started

	queued, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	if _, err := queued.Wait(context.Background()); !errors.Is(err, ErrContextUnavailable) {
		t.Errorf("queued request returned %v, want ErrContextUnavailable", err)
	}

	close(release)
	if _, err := blocker.Wait(context.Background()); err != nil {
		t.Errorf("in-flight request failed: %v", err)
	}
	<-closed

	if _, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		return nil, nil
	}); !errors.Is(err, ErrContextUnavailable) {
		t.Errorf("Submit after Close returned %v, want ErrContextUnavailable", err)
	}
}

func TestCoordinatorEvents(t *testing.T) {
	c := NewCoordinator("test")
	defer c.Close()

	var mu sync.Mutex
	events := []Event{}
	c.OnEvent(func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})

	p, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	failErr := &StageError{Stage: "probe", Err: errors.New("boom")}
	p, err = c.Submit(context.Background(), func(context.Context) (any, error) {
		return nil, failErr
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := p.Wait(context.Background()); err == nil {
		t.Fatal("failing request reported no error")
	}

	mu.Lock()
	defer mu.Unlock()

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4: %+v", len(events), events)
	}
	if events[0].Type != EventAnalysisStarted || events[1].Type != EventAnalysisComplete {
		t.Errorf("success events = %q, %q", events[0].Type, events[1].Type)
	}
	if events[1].Result != "ok" {
		t.Errorf("complete event result = %v, want ok", events[1].Result)
	}
	if events[2].Type != EventAnalysisStarted || events[3].Type != EventError {
		t.Errorf("failure events = %q, %q", events[2].Type, events[3].Type)
	}
	if events[3].Stage != "probe" {
		t.Errorf("error event stage = %q, want probe", events[3].Stage)
	}
}

func TestCoordinatorExpiredContext(t *testing.T) {
	c := NewCoordinator("test")
	defer c.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := c.Submit(ctx, func(context.Context) (any, error) {
		t.Error("run function invoked despite expired context")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := p.Wait(context.Background()); !errors.Is(err, context.Canceled) {
		t.Errorf("expired request returned %v, want context.Canceled", err)
	}
}

func TestPendingWaitHonorsContext(t *testing.T) {
	c := NewCoordinator("test")
	defer c.Close()

	release := make(chan struct{})
	p, err := c.Submit(context.Background(), func(context.Context) (any, error) {
		<-release
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait returned %v, want context.Canceled", err)
	}

	close(release)
	if _, err := p.Wait(context.Background()); err != nil {
		t.Errorf("Wait after release: %v", err)
	}
}
