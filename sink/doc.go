// Package sink provides the destinations log records are written to.
//
// A Sink has one write method per level name except fatal (trace, debug,
// info, warn, error). The logger calls exactly one method per emitted
// record, fatal records going through Error, and returns the method's
// error unchanged.
//
// Built-in sinks:
//
//   - Console writes one line per record, trace/debug/info to stdout and
//     warn/error to stderr by default. Writers are wrapped as locked
//     zapcore.WriteSyncers.
//   - Multi fans a record out to several sinks, combining their errors.
//   - Instrumented decorates a sink with Prometheus counters of written
//     and failed records per method.
//   - Recorder keeps writes in memory, for tests and for capturing output.
package sink
