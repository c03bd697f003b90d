// Package formatter turns assembled records into bytes.
//
// A Formatter encodes a *core.Record; Transform adapts one into the
// logger's transform step, handing the encoded record to the sink as a
// string. Three formatters are built in:
//
//   - JSONFormatter (the default) drives a zapcore JSON encoder with every
//     entry key disabled, so the output contains exactly the record's
//     keys in record order. Nested context objects are written with
//     sorted keys; values without a typed encoder method fall back to
//     encoding/json.
//   - TextFormatter writes "time [SEVERITY] name: msg key=value ...".
//   - YAMLFormatter writes one "---" document per record.
//
// Timestamps default to ISO8601 with millisecond precision.
package formatter
