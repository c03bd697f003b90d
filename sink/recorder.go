package sink

import "sync"

// Call is one write received by a Recorder.
type Call struct {
	Method string
	Output any
}

// Recorder keeps every write in memory. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
	err   error
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailWith makes every later write record the call and return err.
// A nil err restores successful writes.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *Recorder) record(method string, out any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Output: out})
	return r.err
}

// Trace records a trace write
func (r *Recorder) Trace(out any) error { return r.record("trace", out) }

// Debug records a debug write
func (r *Recorder) Debug(out any) error { return r.record("debug", out) }

// Info records an info write
func (r *Recorder) Info(out any) error { return r.record("info", out) }

// Warn records a warn write
func (r *Recorder) Warn(out any) error { return r.record("warn", out) }

// Error records an error write
func (r *Recorder) Error(out any) error { return r.record("error", out) }

// Calls returns a copy of the recorded writes in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]Call, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Len returns the number of recorded writes.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent write.
func (r *Recorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return Call{}, false
	}
	return r.calls[len(r.calls)-1], true
}

// Reset drops every recorded write.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
