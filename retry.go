// Copyright 2025 The retry-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package retry executes an operation and, when it fails with a
// retryable kind, re-invokes it a bounded number of times using
// exponential backoff with jitter.
//
// Example usage:
//
//	policy := retry.NewDefaultPolicy()
//	policy.OnRetry = func(err error, attempt int, elapsed time.Duration) {
//		log.Printf("attempt %d failed after %s: %v", attempt, elapsed, err)
//	}
//
//	err := retry.Do(ctx, policy, func(ctx context.Context, attempt int) error {
//		return client.Ping(ctx)
//	})
//
// Failures are classified by tag, not by type: wrap an error with
// [Permanent] to stop retrying it, or match custom kinds via
// Policy.RetryOn. The final failure propagates to the caller unchanged.
package retry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Operation is a unit of work under retry. It receives the 1-based
// attempt number so it can adapt per attempt, e.g. shorten timeouts.
// ctx is the caller's context; an operation that should be cancellable
// mid-attempt must honor it itself.
type Operation func(ctx context.Context, attempt int) error

// ValueOperation is an Operation that also produces a value.
type ValueOperation[T any] func(ctx context.Context, attempt int) (T, error)

// Executor runs operations under a retry policy. It is immutable after
// construction and safe for concurrent use; concurrent calls share no
// mutable state.
type Executor struct {
	sleeper Sleeper
	logger  *slog.Logger
	random  func() float64
}

// ExecutorOpt is a functional option that allows configuring the [Executor].
type ExecutorOpt func(*Executor)

// WithSleeper sets the sleeper used for backoff pauses.
// Pass [NoopSleeper] to disable pausing in tests.
func WithSleeper(sleeper Sleeper) ExecutorOpt {
	return func(e *Executor) {
		e.sleeper = sleeper
	}
}

// WithLogger sets the logger for the [Executor]. Retries are logged at
// debug level; the default logger discards everything.
func WithLogger(logger *slog.Logger) ExecutorOpt {
	return func(e *Executor) {
		e.logger = logger
	}
}

// WithRandom sets the uniform random source for jitter. random must
// return values in [0, 1).
func WithRandom(random func() float64) ExecutorOpt {
	return func(e *Executor) {
		e.random = random
	}
}

// NewExecutor returns a new Executor. By default it sleeps on a real
// timer, discards logs and draws jitter from math/rand.
func NewExecutor(opts ...ExecutorOpt) *Executor {
	e := &Executor{
		sleeper: timeSleeper{},
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		random:  rand.Float64,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Do invokes op under the given policy until it succeeds, fails with a
// non-retryable kind, or MaxTries attempts are exhausted. A nil policy
// means [NewDefaultPolicy]. The final failure is returned unchanged,
// never wrapped in a synthetic "retries exhausted" error.
//
// If ctx is cancelled during a backoff pause, Do stops retrying and
// returns the last attempt's failure joined with ctx's error.
func (e *Executor) Do(ctx context.Context, policy *Policy, op Operation) error {
	if policy == nil {
		policy = NewDefaultPolicy()
	}

	if err := policy.Validate(); err != nil {
		return err
	}

	if op == nil {
		return &ConfigError{Field: "operation", Reason: "must not be nil"}
	}

	start := time.Now()

	for attempt := 1; ; attempt++ {
		err := op(ctx, attempt)
		if err == nil {
			return nil
		}

		kind := KindOf(err)
		if !policy.retryable(kind) {
			return err
		}

		if attempt >= policy.MaxTries {
			return err
		}

		if policy.OnRetry != nil {
			policy.OnRetry(err, attempt, time.Since(start))
		}

		delay := policy.delay(attempt, e.random)
		e.logger.Debug("operation failed, retrying",
			slog.Int("attempt", attempt),
			slog.String("kind", string(kind)),
			slog.Duration("delay", delay),
		)

		if sleepErr := e.sleeper.Sleep(ctx, delay); sleepErr != nil {
			return errors.Join(err, sleepErr)
		}
	}
}

// DoValue is like [Executor.Do] for operations that produce a value.
// On failure the zero value is returned alongside the error.
func DoValue[T any](ctx context.Context, e *Executor, policy *Policy, op ValueOperation[T]) (T, error) {
	var result T

	if op == nil {
		return result, &ConfigError{Field: "operation", Reason: "must not be nil"}
	}

	err := e.Do(ctx, policy, func(ctx context.Context, attempt int) error {
		var opErr error
		result, opErr = op(ctx, attempt)

		return opErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}

var defaultExecutor = NewExecutor()

// Do invokes op on a shared default executor. See [Executor.Do].
func Do(ctx context.Context, policy *Policy, op Operation) error {
	return defaultExecutor.Do(ctx, policy, op)
}

// DoWithResult invokes op on a shared default executor. See [DoValue].
func DoWithResult[T any](ctx context.Context, policy *Policy, op ValueOperation[T]) (T, error) {
	return DoValue[T](ctx, defaultExecutor, policy, op)
}
