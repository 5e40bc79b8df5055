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
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPolicy_delay_Sequence(t *testing.T) {
	t.Parallel()

	// With the draw pinned to the top of the jitter range the delay
	// equals the capped pre-jitter value: doubling from BaseDelay,
	// clamped at MaxDelay.
	topDraw := func() float64 { return 1 }

	policy := NewPolicy(10, 500*time.Millisecond, time.Second)

	want := []time.Duration{
		500 * time.Millisecond,
		time.Second,
		time.Second,
		time.Second,
		time.Second,
	}

	for i, wantDelay := range want {
		attempt := i + 1
		require.Equal(t, wantDelay, policy.delay(attempt, topDraw), "attempt %d", attempt)
	}
}

func TestPolicy_delay_FloorAtBaseDelay(t *testing.T) {
	t.Parallel()

	// The bottom of the jitter range is capped/2, which on the first
	// retry would be BaseDelay/2; the floor keeps it at BaseDelay.
	bottomDraw := func() float64 { return 0 }

	policy := NewPolicy(10, 500*time.Millisecond, time.Second)

	require.Equal(t, 500*time.Millisecond, policy.delay(1, bottomDraw))
	require.Equal(t, 500*time.Millisecond, policy.delay(2, bottomDraw))
	require.Equal(t, 500*time.Millisecond, policy.delay(3, bottomDraw))
}

func TestPolicy_delay_JitterBounds(t *testing.T) {
	t.Parallel()

	policy := NewPolicy(10, 500*time.Millisecond, time.Second)

	for attempt := 1; attempt <= 6; attempt++ {
		for i := 0; i < 1000; i++ {
			d := policy.delay(attempt, rand.Float64)

			require.GreaterOrEqual(t, d, 500*time.Millisecond,
				"attempt %d produced a delay below BaseDelay", attempt)
			require.LessOrEqual(t, d, time.Second,
				"attempt %d produced a delay above MaxDelay", attempt)
		}
	}
}

func TestPolicy_delay_UncappedGrowth(t *testing.T) {
	t.Parallel()

	topDraw := func() float64 { return 1 }

	policy := NewPolicy(10, 100*time.Millisecond, 10*time.Second)

	require.Equal(t, 100*time.Millisecond, policy.delay(1, topDraw))
	require.Equal(t, 200*time.Millisecond, policy.delay(2, topDraw))
	require.Equal(t, 400*time.Millisecond, policy.delay(3, topDraw))
	require.Equal(t, 800*time.Millisecond, policy.delay(4, topDraw))
	require.Equal(t, 1600*time.Millisecond, policy.delay(5, topDraw))
}
