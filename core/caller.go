package core

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// CallerInfo identifies the source location of a log call.
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// Caller resolves the caller skip frames above the function calling Caller.
func Caller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}

// String returns the short "file.go:line" form, or "" when undefined.
func (c CallerInfo) String() string {
	if !c.Defined {
		return ""
	}
	return filepath.Base(c.File) + ":" + strconv.Itoa(c.Line)
}

// CallerFromPC resolves a program counter such as slog.Record.PC.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.File == "" {
		return CallerInfo{}
	}
	return CallerInfo{
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
		Defined:  true,
	}
}
