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

package retry

import (
	"fmt"
	"time"
)

const (
	// DefaultMaxTries is the default cap on total attempts.
	DefaultMaxTries = 3
	// DefaultBaseDelay is the default initial backoff unit.
	DefaultBaseDelay = 500 * time.Millisecond
	// DefaultMaxDelay is the default ceiling on a single backoff.
	DefaultMaxDelay = time.Second
)

// ConfigError reports invalid arguments to the retry primitive itself.
// It indicates a programmer error: it is raised before any attempt,
// is never retried and is never passed to the OnRetry hook.
type ConfigError struct {
	// Field is the name of the offending policy field.
	Field string
	// Reason describes why the value is invalid.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("retry: invalid %s: %s", e.Field, e.Reason)
}

// Policy defines the configuration for retry attempts in case of failures.
type Policy struct {
	// MaxTries is the upper bound on total attempts, not on retries.
	// A policy with MaxTries = 3 invokes the operation at most 3 times
	// and sleeps at most 2 times.
	MaxTries int

	// BaseDelay is the initial backoff unit. No computed delay is ever
	// shorter than BaseDelay, even when jitter would drive it lower.
	BaseDelay time.Duration

	// MaxDelay is the ceiling on any single backoff before jitter.
	// Must be >= BaseDelay.
	MaxDelay time.Duration

	// RetryOn lists the failure kinds worth retrying. A failure whose
	// kind is outside the set propagates immediately without retry.
	// If nil, only KindTransient failures are retried; unclassified
	// errors count as transient, see KindOf.
	RetryOn []Kind

	// OnRetry, if set, is invoked with the failure, the 1-based attempt
	// number and the time elapsed since the first attempt, synchronously
	// before each sleep. It sees every failure that triggers a retry but
	// not the final one that propagates. Its return is ignored; a panic
	// inside it propagates immediately, abandoning remaining retries.
	OnRetry func(err error, attempt int, elapsed time.Duration)
}

// NewPolicy returns a new retry policy with the given bounds.
func NewPolicy(maxTries int, baseDelay, maxDelay time.Duration) *Policy {
	return &Policy{
		MaxTries:  maxTries,
		BaseDelay: baseDelay,
		MaxDelay:  maxDelay,
	}
}

// NewDefaultPolicy returns a new Policy with default values.
func NewDefaultPolicy() *Policy {
	return NewPolicy(DefaultMaxTries, DefaultBaseDelay, DefaultMaxDelay)
}

// Validate checks retry policy values.
func (p *Policy) Validate() error {
	if p.MaxTries < 1 {
		return &ConfigError{Field: "MaxTries", Reason: fmt.Sprintf("must be positive, got %d", p.MaxTries)}
	}

	if p.BaseDelay <= 0 {
		return &ConfigError{Field: "BaseDelay", Reason: fmt.Sprintf("must be positive, got %s", p.BaseDelay)}
	}

	if p.MaxDelay <= 0 {
		return &ConfigError{Field: "MaxDelay", Reason: fmt.Sprintf("must be positive, got %s", p.MaxDelay)}
	}

	if p.BaseDelay > p.MaxDelay {
		return &ConfigError{
			Field:  "BaseDelay",
			Reason: fmt.Sprintf("must not exceed MaxDelay, got %s > %s", p.BaseDelay, p.MaxDelay),
		}
	}

	return nil
}

func (p *Policy) retryable(kind Kind) bool {
	if p.RetryOn == nil {
		return kind == KindTransient
	}

	for _, k := range p.RetryOn {
		if k == kind {
			return true
		}
	}

	return false
}
