package core

// Well-known record keys.
const (
	KeyErr      = "err"
	KeyMsg      = "msg"
	KeyName     = "name"
	KeyHostname = "hostname"
	KeyPID      = "pid"
	KeyLevel    = "level"
	KeySeverity = "severity"
	KeyTime     = "time"
	KeyCaller   = "caller"
)

// Serializer rewrites the value of a context-object field before it is
// merged into a record.
type Serializer func(v any) any

// Transform turns an assembled record into the value handed to the sink.
type Transform func(rec *Record) (any, error)

// Record is the ordered key/value set assembled for a single log call.
//
// Setting an existing key replaces its value but keeps its original
// position, so encoders see keys in first-insertion order.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty record with room for n keys.
func NewRecord(n int) *Record {
	return &Record{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set stores v under key.
func (r *Record) Set(key string, v any) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns a copy of the keys in record order.
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Range calls fn for each key in record order until fn returns false.
func (r *Record) Range(fn func(key string, v any) bool) {
	for _, k := range r.keys {
		if !fn(k, r.values[k]) {
			return
		}
	}
}

// Map returns the record as an unordered map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, len(r.values))
	for k, v := range r.values {
		m[k] = v
	}
	return m
}
