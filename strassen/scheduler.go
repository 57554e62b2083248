// SPDX-License-Identifier: MIT

package strassen

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// forkJoin runs batches of independent tasks with a shared bound on extra
// goroutines. One forkJoin serves a whole Multiply call, so nested batches
// (tasks that fork their own batch) draw from the same slots.
//
// A task that finds no free slot runs inline on the forking goroutine. The
// forking goroutine never blocks waiting for a slot, so nested joins cannot
// deadlock however deep the recursion goes.
type forkJoin struct {
	slots *semaphore.Weighted // nil ⇒ everything runs inline
}

// newForkJoin bounds execution to maxWorkers goroutines in total: the caller
// plus maxWorkers-1 spawned ones.
func newForkJoin(maxWorkers int) *forkJoin {
	if maxWorkers <= 1 {
		return &forkJoin{}
	}

	return &forkJoin{slots: semaphore.NewWeighted(int64(maxWorkers - 1))}
}

// run executes every task and returns once all of them have finished
// (join barrier). The first error wins; results of the other tasks are left to
// the caller to discard.
func (s *forkJoin) run(tasks []func() error) error {
	var g errgroup.Group
	var inlineErr error
	for _, task := range tasks {
		if s.slots != nil && s.slots.TryAcquire(1) {
			g.Go(func() error {
				defer s.slots.Release(1)
				return task()
			})
			continue
		}
		if err := task(); err != nil && inlineErr == nil {
			inlineErr = err
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return inlineErr
}
