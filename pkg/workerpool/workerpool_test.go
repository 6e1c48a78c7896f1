package workerpool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"driver-buddy/pkg/workerpool"
)

func TestSubmitReturnsResult(t *testing.T) {
	wp := workerpool.NewWorkerPool(2, 4)
	defer wp.Close()

	resC := make(chan workerpool.Result, 1)
	err := wp.Submit(context.Background(), workerpool.Task{
		Fn:      func() (any, error) { return 42, nil },
		ResultC: resC,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	res := <-resC
	if res.Err != nil || res.Value.(int) != 42 {
		t.Errorf("result = %+v, want 42", res)
	}
}

func TestSubmitRunsConcurrently(t *testing.T) {
	wp := workerpool.NewWorkerPool(4, 16)
	defer wp.Close()

	var n atomic.Int32
	resC := make(chan workerpool.Result, 10)
	for i := 0; i < 10; i++ {
		if err := wp.Submit(context.Background(), workerpool.Task{
			Fn:      func() (any, error) { n.Add(1); return nil, nil },
			ResultC: resC,
		}); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 10; i++ {
		<-resC
	}
	if got := n.Load(); got != 10 {
		t.Errorf("ran %d tasks, want 10", got)
	}
}

func TestSubmitAfterClose(t *testing.T) {
	wp := workerpool.NewWorkerPool(1, 1)
	wp.Close()
	err := wp.Submit(context.Background(), workerpool.Task{Fn: func() (any, error) { return nil, nil }})
	if !errors.Is(err, workerpool.ErrClosed) {
		t.Errorf("Submit after Close = %v, want ErrClosed", err)
	}
}

func TestSubmitHonoursContext(t *testing.T) {
	wp := workerpool.NewWorkerPool(1, 0)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)
	if err := wp.Submit(context.Background(), workerpool.Task{Fn: func() (any, error) { <-block; return nil, nil }}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := wp.Submit(ctx, workerpool.Task{Fn: func() (any, error) { return nil, nil }})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Submit on a busy pool = %v, want DeadlineExceeded", err)
	}
}
