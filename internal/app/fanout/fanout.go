// Package fanout runs one independent command per item on a fixed pool of
// workers. Bulk lifecycle commands use it so that every id gets its own unit
// of work and a failure on one id never stops the others.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Outcome is the result of running fn for one item. Exactly one of Value
// and Err is meaningful.
type Outcome[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// PanicError reports a panic raised while processing one item.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("fanout: item panicked: %v", e.Value)
}

// Run calls fn for every item using at most workers goroutines and returns
// one Outcome per item in input order. workers below 1 is treated as 1.
//
// Items not yet started when ctx is done are not passed to fn; their
// Outcome carries ctx.Err(). Items already running finish on their own
// terms. A panic in fn is recovered and reported as a *PanicError for that
// item only.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Outcome[T, R] {
	outcomes := make([]Outcome[T, R], len(items))
	if len(items) == 0 {
		return outcomes
	}
	workers = min(max(workers, 1), len(items))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				outcomes[i] = runOne(ctx, items[i], fn)
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()
	return outcomes
}

func runOne[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (out Outcome[T, R]) {
	out.Item = item
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}
	defer func() {
		if v := recover(); v != nil {
			out.Err = &PanicError{Value: v}
		}
	}()
	out.Value, out.Err = fn(ctx, item)
	return out
}

// Split separates outcomes into successes and failures, keeping input order
// within each group.
func Split[T, R any](outcomes []Outcome[T, R]) (succeeded, failed []Outcome[T, R]) {
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
			continue
		}
		succeeded = append(succeeded, o)
	}
	return succeeded, failed
}
