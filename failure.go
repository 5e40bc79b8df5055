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
	"errors"
	"fmt"
)

// Kind classifies an operation failure for retry decisions.
// Callers may define their own kinds; only values matched against
// Policy.RetryOn have meaning to the executor.
type Kind string

const (
	// KindTransient marks a failure worth retrying. Errors that carry no
	// explicit classification are treated as transient.
	KindTransient Kind = "transient"
	// KindPermanent marks a failure that must not be retried.
	KindPermanent Kind = "permanent"
)

// Error tags an underlying error with a failure Kind. The executor
// matches the tag against the policy's RetryOn set; everything else
// about the error, including its identity for errors.Is/As, is the
// wrapped error's.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Classify tags err with the given kind. A nil err stays nil.
func Classify(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Err: err}
}

// Transient tags err as a retryable failure.
func Transient(err error) error {
	return Classify(KindTransient, err)
}

// Permanent tags err as a failure that must not be retried.
func Permanent(err error) error {
	return Classify(KindPermanent, err)
}

// KindOf returns the kind of the outermost classified error in err's
// chain. An unclassified non-nil error is KindTransient, so plain
// errors are retried under the default policy.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}

	return KindTransient
}
