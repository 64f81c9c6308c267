package middleware

import (
	"testing"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Burst Then Throttle", func(t *testing.T) {
		rl := newRateLimiter(60) // burst 30

		allowed := 0
		for i := 0; i < 100; i++ {
			if rl.Allow("user-1") {
				allowed++
			}
		}
		if allowed < 30 || allowed >= 100 {
			t.Errorf("allowed = %d, want the burst through and the rest throttled", allowed)
		}
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		rl := newRateLimiter(60)

		for i := 0; i < 100; i++ {
			rl.Allow("noisy")
		}
		if !rl.Allow("quiet") {
			t.Errorf("a fresh key must not inherit another key's throttle")
		}
	})

	t.Run("Zero Config Falls Back To Default", func(t *testing.T) {
		rl := newRateLimiter(0)
		if !rl.Allow("user-1") {
			t.Errorf("default limiter must allow the first request")
		}
	})
}
