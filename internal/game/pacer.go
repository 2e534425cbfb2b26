package game

import "time"

// frameEpsilon is shaved off the budget to absorb clock jitter.
const frameEpsilon = 10 * time.Microsecond

// Pacer caps the frame rate by spinning on a monotonic clock.
type Pacer struct {
	budget time.Duration
	now    func() time.Time
	last   time.Time
}

// NewPacer creates a pacer for fps frames per second. fps <= 0 disables
// waiting. now defaults to time.Now, whose readings carry a monotonic clock.
func NewPacer(fps int, now func() time.Time) *Pacer {
	if now == nil {
		now = time.Now
	}
	p := &Pacer{now: now}
	if fps > 0 {
		p.budget = time.Second/time.Duration(fps) - frameEpsilon
	}
	p.last = now()
	return p
}

// Budget returns the minimum frame duration.
func (p *Pacer) Budget() time.Duration {
	return p.budget
}

// Wait busy-waits until the budget has passed since the previous Wait and
// returns the full frame duration.
func (p *Pacer) Wait() time.Duration {
	now := p.now()
	for now.Sub(p.last) < p.budget {
		now = p.now()
	}
	elapsed := now.Sub(p.last)
	p.last = now
	return elapsed
}
