// Package core defines the shared types the logger is built from.
//
// The level table maps each of the six levels (trace, debug, info, warn,
// error, fatal) to a fixed numeric rank and severity label. Ranks are
// compared for threshold filtering; severities are written into records.
//
// A Record is the ordered key/value set assembled for one log call. It is
// handed to a Transform; the logger never reuses it.
//
// Log call arguments are classified by Classify into a closed set of
// shapes (text, context object, failure, other). ExtractErrors and
// FormatMessage are pure functions over the argument list: the caller's
// slice is never rewritten.
//
// Context fields are Values, either a Literal or a Lazy producer that is
// invoked each time a record is assembled.
package core
