package game

import "time"

// frameLimiter sleeps out the rest of a frame to hold a target rate.
type frameLimiter struct {
	frame time.Duration // zero disables limiting
	now   func() time.Time
	sleep func(time.Duration)
}

func newFrameLimiter(fps int) *frameLimiter {
	l := &frameLimiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		l.frame = time.Second / time.Duration(fps)
	}
	return l
}

// wait blocks until one frame has passed since start.
func (l *frameLimiter) wait(start time.Time) {
	if l.frame == 0 {
		return
	}
	if remaining := l.frame - l.now().Sub(start); remaining > 0 {
		l.sleep(remaining)
	}
}
