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
	"context"
	"time"
)

// Sleeper pauses the calling goroutine between attempts.
type Sleeper interface {
	// Sleep blocks for d or until ctx is done, whichever comes first,
	// returning ctx's error in the latter case.
	Sleep(ctx context.Context, d time.Duration) error
}

// timeSleeper waits on a real timer, aborting when ctx is done.
type timeSleeper struct{}

func (timeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoopSleeper skips backoff pauses entirely while the rest of the retry
// logic, including delay computation and the OnRetry hook, still runs.
// Inject it with WithSleeper to make retry timing deterministic in
// tests. It still honors ctx cancellation.
type NoopSleeper struct{}

func (NoopSleeper) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
