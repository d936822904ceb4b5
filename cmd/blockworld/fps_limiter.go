package main

import "time"

// fpsLimiter paces the frame loop when vsync is off.
type fpsLimiter struct {
	limit int
	next  time.Time
}

// Wait blocks until the next frame is due. A limit of zero disables it.
// It sleeps most of the gap and spins the last 200µs.
func (f *fpsLimiter) Wait(paused bool) {
	limit := f.limit
	if paused {
		limit = 30
	}
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
	}

	// resync after a hitch instead of racing to catch up
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
