// Package parallel runs a callback over many inputs with bounded
// concurrency, the fan-out/fan-in glue shared by the per-card build phase
// and any batch-style caller.
package parallel

import (
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 8

func clampWorkers(workers int) int {
	if workers <= 0 {
		return defaultWorkers
	}
	return workers
}

// ForEach invokes fn once per element, at most workers at a time. Elements
// are passed by pointer so callers can update them in place. Every element
// is visited even when some fail; the first error is returned once all
// callbacks drain.
func ForEach[T any](items []T, workers int, fn func(*T) error) error {
	var group errgroup.Group
	group.SetLimit(clampWorkers(workers))

	for i := range items {
		i := i
		group.Go(func() error {
			return fn(&items[i])
		})
	}

	return group.Wait()
}

// Map runs fn over every element and collects the results in input order.
func Map[In, Out any](items []In, workers int, fn func(In) (Out, error)) ([]Out, error) {
	var group errgroup.Group
	group.SetLimit(clampWorkers(workers))

	out := make([]Out, len(items))
	for i := range items {
		i := i
		group.Go(func() error {
			res, err := fn(items[i])
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FlatMap runs fn over every element and concatenates the per-element
// result slices, preserving input order.
func FlatMap[In, Out any](items []In, workers int, fn func(In) ([]Out, error)) ([]Out, error) {
	chunks, err := Map(items, workers, fn)
	if err != nil {
		return nil, err
	}

	var out []Out
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out, nil
}
