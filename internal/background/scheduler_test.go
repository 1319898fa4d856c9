package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func startScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := NewScheduler(SchedulerConfig{WorkerCount: 1, QueueSize: 4})
	s.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func TestScheduleBeforeStart(t *testing.T) {
	s := NewScheduler(SchedulerConfig{})
	err := s.Schedule(Job{Name: "noop", Run: func(context.Context) error { return nil }})
	if !errors.Is(err, ErrSchedulerNotStarted) {
		t.Fatalf("expected ErrSchedulerNotStarted, got %v", err)
	}
}

func TestScheduleRejectsDuplicateWhileActive(t *testing.T) {
	s := startScheduler(t)

	release := make(chan struct{})
	done := make(chan struct{})
	job := Job{Name: "slow", Run: func(context.Context) error {
		<-release
		close(done)
		return nil
	}}

	if err := s.Schedule(job); err != nil {
		t.Fatalf("first schedule failed: %v", err)
	}
	if err := s.Schedule(job); !errors.Is(err, ErrJobAlreadyScheduled) {
		t.Fatalf("expected ErrJobAlreadyScheduled, got %v", err)
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}

	deadline := time.Now().Add(time.Second)
	for s.ActiveJobCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("job still active after completion")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestScheduleRecoversPanics(t *testing.T) {
	s := startScheduler(t)

	if err := s.Schedule(Job{Name: "boom", Run: func(context.Context) error { panic("boom") }}); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	ran := make(chan struct{})
	deadline := time.Now().Add(time.Second)
	for {
		err := s.Schedule(Job{Name: "after", Run: func(context.Context) error {
			close(ran)
			return nil
		}})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("could not schedule follow-up job: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive a panicking job")
	}
}

func TestEveryRunsRepeatedly(t *testing.T) {
	s := startScheduler(t)

	var runs int32
	err := s.Every(10*time.Millisecond, Job{Name: "tick", Run: func(context.Context) error {
		atomic.AddInt32(&runs, 1)
		return nil
	}})
	if err != nil {
		t.Fatalf("every failed: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&runs) < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 3 runs, got %d", atomic.LoadInt32(&runs))
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := s.Every(0, Job{Name: "bad", Run: func(context.Context) error { return nil }}); err == nil {
		t.Fatalf("expected an error for a zero interval")
	}
}
