package service

import (
	"context"

	"driver-buddy/pkg/workerpool"
)

// AsyncService runs blocking storage calls on the shared worker pool so a
// slow cloud store cannot stall the bot's update loop.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// SubmitAsync runs fn on the pool and waits for its result or for ctx.
func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run is SubmitAsync with a typed result.
func Run[T any](ctx context.Context, a *AsyncService, fn func() (T, error)) (T, error) {
	v, err := a.SubmitAsync(ctx, func() (any, error) { return fn() })
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
