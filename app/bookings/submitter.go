package bookings

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/joefazee/travel-explorer/models"
)

// Pending is a booking whose simulated submission has not resolved yet.
type Pending struct {
	done chan struct{}

	mu     sync.Mutex
	result models.Booking
	ready  bool
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// Done is closed once the submission resolved
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Result returns the confirmed booking, ok is false until Done is closed.
func (p *Pending) Result() (models.Booking, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result, p.ready
}

func (p *Pending) resolve(b models.Booking) {
	p.mu.Lock()
	p.result = b
	p.ready = true
	p.mu.Unlock()
	close(p.done)
}

// Submitter simulates the remote booking call by confirming each booking
// after a fixed delay. There is no way to cancel a scheduled submission.
type Submitter struct {
	clock clock.Clock
	delay time.Duration
}

// NewSubmitter creates a submitter that resolves after delay on clk
func NewSubmitter(clk clock.Clock, delay time.Duration) *Submitter {
	if clk == nil {
		clk = clock.New()
	}
	return &Submitter{clock: clk, delay: delay}
}

// Submit schedules the confirmation of b. onConfirm runs before Done closes.
func (s *Submitter) Submit(b models.Booking, onConfirm func(models.Booking)) *Pending {
	p := newPending()
	s.clock.AfterFunc(s.delay, func() {
		b.Confirm(s.clock.Now())
		if onConfirm != nil {
			onConfirm(b)
		}
		p.resolve(b)
	})
	return p
}
