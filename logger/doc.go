// Package logger is the public API of jsonlog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: name, minimum level, sink,
// context fields, serializers and transform are fixed by New (or the
// Builder) and never modified. Child returns a new Logger whose context
// fields are the parent's overlaid with the given ones; the parent is
// untouched.
//
// Level methods accept free-form arguments:
//
//	log.Info("listening on %s", addr)
//	log.Warn(logger.Object{"user": id}, "quota at %d%%", pct)
//	log.Error(err)
//
// Every error among the arguments is replaced by its message for message
// formatting, and the first one is also written under "err" as
// {message, stack}. A leading Object (or map[string]any) is merged into
// the record instead of the message, after its fields pass through any
// registered serializers.
//
// Records are assembled in this order, later keys overriding earlier
// ones: context fields, err, context-object fields, msg, then name,
// hostname, pid, level, severity and time. The fixed fields therefore
// cannot be shadowed by caller data.
//
// The record is encoded by the transform (JSON text by default) and
// handed to the sink method named after the level; fatal uses Error. The
// method returns the sink's error. Calls below the minimum level return
// nil after a single rank comparison.
//
// The package initializes a default Logger writing JSON to the console;
// the package-level functions Info, Error, etc. delegate to it.
package logger
