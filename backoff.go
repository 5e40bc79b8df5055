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
	"math"
	"time"
)

// delay computes the backoff before the next attempt. attempt is the
// number of attempts already made, so the first retry uses exponent 0
// and waits BaseDelay before jitter.
//
// The pre-jitter delay doubles from BaseDelay and is clamped at
// MaxDelay; jitter scales the clamped value into [clamped/2, clamped];
// the final floor guarantees no delay is ever shorter than BaseDelay.
// random must return a uniform value in [0, 1).
func (p *Policy) delay(attempt int, random func() float64) time.Duration {
	raw := float64(p.BaseDelay) * math.Pow(2, float64(attempt-1))
	capped := math.Min(raw, float64(p.MaxDelay))
	jittered := capped * 0.5 * (1 + random())

	return time.Duration(math.Max(float64(p.BaseDelay), jittered))
}
