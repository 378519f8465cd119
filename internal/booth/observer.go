//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package booth

import (
	"sync"

	"github.com/agbru/boothcalc/internal/logging"
)

// Observer receives one Event per iteration, in iteration order.
type Observer interface {
	OnStep(ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event)

// OnStep calls f(ev).
func (f ObserverFunc) OnStep(ev Event) { f(ev) }

// NoOpObserver discards every event.
type NoOpObserver struct{}

// OnStep does nothing.
func (NoOpObserver) OnStep(Event) {}

// Recorder collects events so a trace can be rendered after the call.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStep appends ev to the recorded trace.
func (r *Recorder) OnStep(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded trace.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset clears the recorded trace.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// LoggingObserver writes every iteration to a structured logger at debug level.
type LoggingObserver struct {
	logger logging.Logger
}

// NewLoggingObserver returns an observer logging through logger.
func NewLoggingObserver(logger logging.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnStep logs ev.
func (o *LoggingObserver) OnStep(ev Event) {
	o.logger.Debug("booth iteration",
		logging.Int("iteration", ev.Iteration),
		logging.String("pair", ev.Pair),
		logging.String("op", ev.Op.String()),
		logging.Bool("overflow", ev.Overflow),
		logging.String("p", ev.AfterShift.P),
		logging.String("q", ev.AfterShift.Q),
		logging.String("q_1", string(ev.AfterShift.Q1)),
	)
}

// multiObserver fans events out to several observers.
type multiObserver []Observer

func (m multiObserver) OnStep(ev Event) {
	for _, o := range m {
		o.OnStep(ev)
	}
}

// Observers combines several observers into one. Nil entries are skipped.
func Observers(obs ...Observer) Observer {
	var m multiObserver
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	switch len(m) {
	case 0:
		return NoOpObserver{}
	case 1:
		return m[0]
	}
	return m
}
