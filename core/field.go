package core

// Value is a context-field value: either a literal or a zero-argument
// producer resolved each time a record is assembled.
type Value struct {
	literal  any
	producer func() any
}

// Literal wraps a fixed value.
func Literal(v any) Value {
	return Value{literal: v}
}

// Lazy wraps a producer that is invoked once per emitted record.
func Lazy(fn func() any) Value {
	return Value{producer: fn}
}

// IsLazy reports whether the value is computed at record time.
func (v Value) IsLazy() bool {
	return v.producer != nil
}

// Resolve returns the literal, or calls the producer. A panicking producer
// is not recovered.
func (v Value) Resolve() any {
	if v.producer != nil {
		return v.producer()
	}
	return v.literal
}

// Field is a named context value merged into every record of a logger.
type Field struct {
	Key   string
	Value Value
}

// MergeFields returns a new slice holding base overlaid with overrides.
// An override replaces a base field of the same key in place; new keys are
// appended in the order given. Neither input is modified.
func MergeFields(base []Field, overrides ...Field) []Field {
	merged := make([]Field, 0, len(base)+len(overrides))
	index := make(map[string]int, len(base)+len(overrides))

	add := func(f Field) {
		if i, ok := index[f.Key]; ok {
			merged[i] = f
			return
		}
		index[f.Key] = len(merged)
		merged = append(merged, f)
	}

	for _, f := range base {
		add(f)
	}
	for _, f := range overrides {
		add(f)
	}
	return merged
}
