package tick

import (
	"sync"
	"time"

	"project-tracker/internal/registry"
)

// Scheduler periodically refreshes the displayed elapsed time of every
// running timer in the registry. A single goroutine drives the loop, so
// at most one refresh is in flight at a time; ticks that fire while a
// refresh is still running are dropped by the ticker, never queued.
//
// The scheduler is torn down exactly once, at session end. There is no
// per-timer cancellation; stopping a timer happens through the registry.
type Scheduler struct {
	reg       *registry.Registry
	interval  time.Duration
	onRefresh func()
	now       func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Scheduler over the given registry. onRefresh is invoked
// after each tick that refreshed at least one running timer; ticks with
// no running timers notify nobody, so an idle registry causes no
// downstream work. onRefresh may be nil.
func New(reg *registry.Registry, interval time.Duration, onRefresh func()) *Scheduler {
	return &Scheduler{
		reg:       reg,
		interval:  interval,
		onRefresh: onRefresh,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
}

// Run starts the periodic loop. It returns immediately; the loop runs
// until Stop is called.
func (s *Scheduler) Run() {
	s.wg.Add(1)
	go s.loop()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick performs one refresh pass over the registry.
func (s *Scheduler) tick() {
	if refreshed := s.reg.Refresh(s.now()); refreshed > 0 && s.onRefresh != nil {
		s.onRefresh()
	}
}

// Stop tears the scheduler down and waits for the loop to exit. Safe to
// call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.wg.Wait()
}
