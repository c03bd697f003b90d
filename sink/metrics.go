package sink

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/jsonlog/core"
)

// Instrumented counts records written through the wrapped sink and the
// writes that failed, labelled by sink method.
type Instrumented struct {
	next     Sink
	written  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewInstrumented wraps next and registers its counters on reg. A nil reg
// leaves the counters unregistered.
func NewInstrumented(next Sink, reg prometheus.Registerer) (*Instrumented, error) {
	s := &Instrumented{
		next: next,
		written: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jsonlog",
			Name:      "records_written_total",
			Help:      "Records successfully handed to the sink, by sink method.",
		}, []string{"method"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jsonlog",
			Name:      "sink_failures_total",
			Help:      "Sink writes that returned an error, by sink method.",
		}, []string{"method"}),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{s.written, s.failures} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Written returns the counter of successful writes for a sink method.
func (s *Instrumented) Written(method string) prometheus.Counter {
	return s.written.WithLabelValues(method)
}

// Failures returns the counter of failed writes for a sink method.
func (s *Instrumented) Failures(method string) prometheus.Counter {
	return s.failures.WithLabelValues(method)
}

func (s *Instrumented) write(level core.Level, out any) error {
	method := Method(level)
	if err := Dispatch(s.next, level, out); err != nil {
		s.failures.WithLabelValues(method).Inc()
		return err
	}
	s.written.WithLabelValues(method).Inc()
	return nil
}

// Trace forwards a trace record
func (s *Instrumented) Trace(out any) error { return s.write(core.TraceLevel, out) }

// Debug forwards a debug record
func (s *Instrumented) Debug(out any) error { return s.write(core.DebugLevel, out) }

// Info forwards an info record
func (s *Instrumented) Info(out any) error { return s.write(core.InfoLevel, out) }

// Warn forwards a warn record
func (s *Instrumented) Warn(out any) error { return s.write(core.WarnLevel, out) }

// Error forwards an error record
func (s *Instrumented) Error(out any) error { return s.write(core.ErrorLevel, out) }
