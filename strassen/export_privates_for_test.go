// SPDX-License-Identifier: MIT

package strassen

// Test-Bridge (White-Box) for private hooks and panic messages.
//
// Purpose:
//   - Expose the base-case hook and panic strings to strassen_test ONLY.
//   - The file ends in _test.go, so none of this reaches production builds.

// WithBaseCaseHook_TestOnly installs fn, called with the side of every block
// handed to the naive kernel. fn must be safe for concurrent use.
func WithBaseCaseHook_TestOnly(fn func(side int)) Option {
	return func(o *Options) { o.onBaseCase = fn }
}

// RunForkJoin_TestOnly runs tasks on a fresh forkJoin bounded to maxWorkers.
func RunForkJoin_TestOnly(maxWorkers int, tasks []func() error) error {
	return newForkJoin(maxWorkers).run(tasks)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicMinRowsInvalid_TestOnly       = panicMinRowsInvalid
	PanicMaxRowsInvalid_TestOnly       = panicMaxRowsInvalid
	PanicVariantInvalid_TestOnly       = panicVariantInvalid
	PanicParallelDepthInvalid_TestOnly = panicParallelDepthInvalid
	PanicMaxWorkersInvalid_TestOnly    = panicMaxWorkersInvalid
)
