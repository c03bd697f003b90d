package core

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrorInfo is the normalized form of an error written under the err key.
type ErrorInfo struct {
	Message string `json:"message" yaml:"message"`
	Stack   string `json:"stack" yaml:"stack"`
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// NewErrorInfo normalizes err. The stack is the message followed by the
// trace recorded by github.com/pkg/errors when any error in the chain
// carries one; otherwise the current goroutine's stack is captured,
// skipping skip frames above the caller of NewErrorInfo. A nil err, or a
// nil pointer implementing error, reads as "<nil>".
func NewErrorInfo(err error, skip int) ErrorInfo {
	msg := ErrorText(err)
	if err == nil || isNilPointer(err) {
		return ErrorInfo{Message: msg, Stack: msg + "\n" + zap.StackSkip("", skip+1).String}
	}

	var st stackTracer
	if errors.As(err, &st) {
		return ErrorInfo{Message: msg, Stack: msg + fmt.Sprintf("%+v", st.StackTrace())}
	}

	return ErrorInfo{
		Message: msg,
		Stack:   msg + "\n" + zap.StackSkip("", skip+1).String,
	}
}

// ErrorText returns err.Error(), or "<nil>" when err is nil or a nil
// pointer.
func ErrorText(err error) string {
	if err == nil || isNilPointer(err) {
		return "<nil>"
	}
	return err.Error()
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (e ErrorInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", e.Message)
	enc.AddString("stack", e.Stack)
	return nil
}

func (e ErrorInfo) String() string {
	return e.Message
}
