package core

import (
	"fmt"
	"reflect"
	"strings"
)

// Object is a context object: when it is the first argument of a log call
// its fields are merged into the record instead of the message.
type Object map[string]any

// ArgumentKind tags the shape of a log call argument.
type ArgumentKind uint8

const (
	// TextArg is a string.
	TextArg ArgumentKind = iota
	// ContextArg is an Object or a map[string]any.
	ContextArg
	// FailureArg is an error.
	FailureArg
	// OtherArg is anything else, nil included.
	OtherArg
)

// String returns the name of the kind
func (k ArgumentKind) String() string {
	switch k {
	case TextArg:
		return "text"
	case ContextArg:
		return "context"
	case FailureArg:
		return "failure"
	default:
		return "other"
	}
}

// Argument is a classified log call argument. Only the member matching
// Kind is set; Value always holds the original argument.
type Argument struct {
	Kind    ArgumentKind
	Text    string
	Context Object
	Failure error
	Value   any
}

// Classify tags v as text, context object, failure or other. Errors are
// checked first so that error types backed by strings or maps still count
// as failures. A nil pointer implementing error is other.
func Classify(v any) Argument {
	switch x := v.(type) {
	case error:
		if isNilPointer(x) {
			return Argument{Kind: OtherArg, Value: v}
		}
		return Argument{Kind: FailureArg, Failure: x, Value: v}
	case string:
		return Argument{Kind: TextArg, Text: x, Value: v}
	case Object:
		return Argument{Kind: ContextArg, Context: x, Value: v}
	case map[string]any:
		return Argument{Kind: ContextArg, Context: Object(x), Value: v}
	default:
		return Argument{Kind: OtherArg, Value: v}
	}
}

// isNilPointer reports whether v holds a typed nil pointer, whose methods
// would dereference nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ExtractErrors returns a copy of args where every error is replaced by
// its message text, together with the first error found. args itself is
// left untouched.
func ExtractErrors(args []any) ([]any, error) {
	cleaned := make([]any, len(args))
	var first error
	for i, a := range args {
		if arg := Classify(a); arg.Kind == FailureArg {
			if first == nil {
				first = arg.Failure
			}
			cleaned[i] = arg.Failure.Error()
			continue
		}
		cleaned[i] = a
	}
	return cleaned, first
}

// FormatMessage renders args into a message string.
//
// A lone string is returned verbatim. A leading string followed by more
// arguments is used as a fmt format consuming as many arguments as it has
// verbs; leftovers are appended separated by spaces. Verbs left without an
// argument stay in the message as written. Otherwise every argument is
// printed with fmt.Sprint and joined by spaces.
func FormatMessage(args []any) string {
	if len(args) == 0 {
		return ""
	}

	format, ok := args[0].(string)
	if !ok {
		return joinArgs(args)
	}
	if len(args) == 1 {
		return format
	}

	rest := args[1:]
	n, cut := scanVerbs(format, len(rest))

	var msg string
	if cut >= 0 {
		msg = fmt.Sprintf(format[:cut], rest[:n]...) + unescapePercent(format[cut:])
	} else {
		msg = fmt.Sprintf(format, rest[:n]...)
	}
	if n == len(rest) {
		return msg
	}
	return msg + " " + joinArgs(rest[n:])
}

func joinArgs(args []any) string {
	var sb strings.Builder
	for i, a := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if s, ok := a.(string); ok {
			sb.WriteString(s)
			continue
		}
		fmt.Fprint(&sb, a)
	}
	return sb.String()
}

// scanVerbs walks the directives of format, consuming at most limit
// operands. '*' width and precision count as operands; explicit argument
// indexes are not interpreted. It returns the operands consumed and the
// offset of the first directive that would need more or has no verb, or
// -1 when every directive is satisfied.
func scanVerbs(format string, limit int) (n, cut int) {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		start, need := i, 0
		for i++; i < len(format); i++ {
			c := format[i]
			if c == '*' {
				need++
				continue
			}
			if strings.IndexByte("+-# 0123456789.[]", c) >= 0 {
				continue
			}
			if c != '%' {
				need++
			}
			break
		}
		if i == len(format) || n+need > limit {
			return n, start
		}
		n += need
	}
	return n, -1
}

// unescapePercent turns "%%" into "%" and copies everything else.
func unescapePercent(s string) string {
	return strings.ReplaceAll(s, "%%", "%")
}
