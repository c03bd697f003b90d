// Package benchmark compares the logger against other Go logging libraries.
package benchmark

// noopSink accepts every record and discards it, so benchmarks measure
// record assembly and encoding only.
type noopSink struct{}

func (noopSink) Trace(out any) error { return consume(out) }
func (noopSink) Debug(out any) error { return consume(out) }
func (noopSink) Info(out any) error  { return consume(out) }
func (noopSink) Warn(out any) error  { return consume(out) }
func (noopSink) Error(out any) error { return consume(out) }

func consume(out any) error {
	if s, ok := out.(string); ok {
		_ = len(s)
	}
	return nil
}
