// Copyright 2026 Author(s) of MCP Any
// SPDX-License-Identifier: Apache-2.0

// Package batch runs independent operations concurrently and waits for all
// of them to settle. It never short-circuits: an early failure does not
// prevent sibling operations from running to completion, so a batch of 50
// items with one bad entry still yields 49 results plus one precise error.
package batch

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
)

// DefaultConcurrency bounds how many operations run at once when no override
// is given.
const DefaultConcurrency = 8

// Success pairs an input with the output its operation produced. Index is
// the input's position in the original sequence.
type Success[I, O any] struct {
	Index  int
	Input  I
	Output O
}

// Failure pairs an input with the error its operation produced.
type Failure[I any] struct {
	Index int
	Input I
	Err   error
}

// Results partitions a batch into settled successes and failures. Both
// slices preserve the relative order of the original inputs, and together
// they cover every input exactly once.
type Results[I, O any] struct {
	Succeeded []Success[I, O]
	Failed    []Failure[I]
}

// AllFailed reports whether every input failed. It is false for an empty
// batch.
func (r Results[I, O]) AllFailed() bool {
	return len(r.Failed) > 0 && len(r.Succeeded) == 0
}

// Option configures a Run call.
type Option func(*runConfig)

type runConfig struct {
	concurrency int
}

// WithConcurrency bounds the number of operations in flight at once.
func WithConcurrency(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Run executes op once per input on a worker pool, waits for every
// invocation to settle, and partitions the outcomes. A panic inside op is
// captured as that item's failure and never disturbs sibling items.
//
// Only result ordering is guaranteed; the order in which operations execute
// their side effects is not.
//
// Parameters:
//   - ctx: Passed through to every op invocation. Cancellation is op's
//     concern; Run itself always waits for every submitted task.
//   - inputs: The ordered inputs. An empty slice yields empty Results.
//   - op: The operation to apply to each input.
//
// Returns:
//   - Results: The order-preserving partition of all outcomes.
func Run[I, O any](ctx context.Context, inputs []I, op func(context.Context, I) (O, error), opts ...Option) Results[I, O] {
	var results Results[I, O]
	if len(inputs) == 0 {
		return results
	}

	cfg := runConfig{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	type slot struct {
		output O
		err    error
	}
	slots := make([]slot, len(inputs))

	pool := pond.NewPool(cfg.concurrency)
	group := pool.NewGroup()
	for i := range inputs {
		group.Submit(func() {
			defer func() {
				if p := recover(); p != nil {
					slots[i].err = fmt.Errorf("operation panicked: %v", p)
				}
			}()
			out, err := op(ctx, inputs[i])
			slots[i] = slot{output: out, err: err}
		})
	}
	_ = group.Wait()
	pool.StopAndWait()

	for i, s := range slots {
		if s.err != nil {
			results.Failed = append(results.Failed, Failure[I]{Index: i, Input: inputs[i], Err: s.err})
			continue
		}
		results.Succeeded = append(results.Succeeded, Success[I, O]{Index: i, Input: inputs[i], Output: s.output})
	}
	return results
}
