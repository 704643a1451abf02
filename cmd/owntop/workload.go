package main

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ownkit/ownkit/alloc"
	"github.com/ownkit/ownkit/own"
)

// payload is a stand-in resource with a destructor.
type payload struct {
	data [256]byte
	id   int
}

func (p *payload) Drop() {
	p.id = -1
}

// workload churns ownership families from several goroutines: each step
// creates a family (alternating combined and two-step construction),
// clones it, observes it weakly, races a lock against the drops, and
// tears everything down.
type workload struct {
	ta      *alloc.Tracking
	stopc   chan struct{}
	wg      sync.WaitGroup
	workers int
	churn   time.Duration
}

func newWorkload(ta *alloc.Tracking, workers int, churn time.Duration) *workload {
	return &workload{
		ta:      ta,
		stopc:   make(chan struct{}),
		workers: workers,
		churn:   churn,
	}
}

func (w *workload) start() {
	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go w.loop(i)
	}
}

func (w *workload) stop() {
	close(w.stopc)
	w.wg.Wait()
}

func (w *workload) loop(worker int) {
	defer w.wg.Done()
	rng := rand.New(rand.NewSource(int64(worker) + 1))

	for step := 0; ; step++ {
		select {
		case <-w.stopc:
			return
		default:
		}

		if step%2 == 0 {
			w.combinedStep(rng, step)
		} else {
			w.transferStep(rng, step)
		}

		if w.churn > 0 {
			time.Sleep(w.churn)
		}
	}
}

func (w *workload) combinedStep(rng *rand.Rand, step int) {
	s, err := own.MakeSharedIn(w.ta, payload{id: step})
	if err != nil {
		return
	}
	weak := s.Downgrade()

	clones := make([]*own.Shared[*payload], rng.Intn(4))
	for i := range clones {
		clones[i] = s.Clone()
	}

	if live, ok := weak.Lock(); ok {
		_ = live.Get().id
		live.Drop()
	}

	for _, c := range clones {
		c.Drop()
	}
	s.Drop()
	weak.Drop()
}

func (w *workload) transferStep(rng *rand.Rand, step int) {
	grant, err := w.ta.Alloc(64)
	if err != nil {
		return
	}
	u := own.NewUnique(step, func(int) { w.ta.Free(grant) })

	s, err := own.FromUniqueIn(w.ta, u)
	if err != nil {
		u.Drop()
		return
	}

	weak := s.Downgrade()
	if rng.Intn(2) == 0 {
		if live, ok := weak.Lock(); ok {
			live.Drop()
		}
	}
	s.Drop()
	weak.Drop()
}
