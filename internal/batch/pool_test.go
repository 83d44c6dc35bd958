package batch_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/batch"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunReportsEveryJob(t *testing.T) {
	var jobs []batch.Job
	for i := 0; i < 10; i++ {
		i := i
		jobs = append(jobs, batch.Func{Key: fmt.Sprintf("row-%d", i), Fn: func(context.Context) error {
			if i%3 == 0 {
				return fmt.Errorf("row %d rejected", i)
			}
			return nil
		}})
	}

	r := batch.Run(context.Background(), 3, quietLogger(), jobs)
	if r.Total() != 10 {
		t.Fatalf("Total = %d, want 10", r.Total())
	}
	if len(r.Failed) != 4 {
		t.Fatalf("Failed = %d, want 4", len(r.Failed))
	}
	if r.Failed[0].ID != "row-0" || r.Failed[3].ID != "row-9" {
		t.Errorf("failures not in submission order: %+v", r.Failed)
	}
	if r.Succeeded[0] != "row-1" {
		t.Errorf("first success = %s, want row-1", r.Succeeded[0])
	}
	if r.Err() == nil || r.Err().Error() != "row 0 rejected" {
		t.Errorf("Err = %v", r.Err())
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	var running, peak int32
	block := make(chan struct{})
	var jobs []batch.Job
	for i := 0; i < 8; i++ {
		jobs = append(jobs, batch.Func{Key: fmt.Sprint(i), Fn: func(context.Context) error {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			<-block
			atomic.AddInt32(&running, -1)
			return nil
		}})
	}
	close(block)
	r := batch.Run(context.Background(), 2, quietLogger(), jobs)
	if r.Err() != nil {
		t.Fatal(r.Err())
	}
	if peak > 2 {
		t.Errorf("peak concurrency = %d, want <= 2", peak)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	r := batch.Run(ctx, 1, quietLogger(), []batch.Job{batch.Func{Key: "a", Fn: func(context.Context) error {
		called = true
		return nil
	}}})
	if called {
		t.Error("job ran on a cancelled context")
	}
	if !errors.Is(r.Err(), context.Canceled) {
		t.Errorf("Err = %v, want context.Canceled", r.Err())
	}
}

func TestRunEmpty(t *testing.T) {
	r := batch.Run(context.Background(), 4, quietLogger(), nil)
	if r.Total() != 0 || r.Err() != nil {
		t.Errorf("empty run = %+v", r)
	}
}
