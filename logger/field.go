package logger

import (
	"time"

	"github.com/philipp01105/jsonlog/core"
)

// Field helper functions for convenience

// Object is a context object. Passed as the first argument of a log call
// its fields are merged into the record.
type Object = core.Object

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Any creates a field with any value
func Any(key string, val any) core.Field {
	return core.Field{Key: key, Value: core.Literal(val)}
}

// Lazy creates a field whose value is produced on every emitted record
func Lazy(key string, fn func() any) core.Field {
	return core.Field{Key: key, Value: core.Lazy(fn)}
}
