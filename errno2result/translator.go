//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Errno to result translator.
//

package errno2result

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"syscall"

	"github.com/rbmk-project/oserr/result"
)

// CallSite is the source location of a failed operation.
//
// The zero value means the location is unknown.
type CallSite struct {
	// File is the source file name.
	File string

	// Line is the line number within File.
	Line int
}

// String returns "file:line" or "unknown" for the zero value.
func (cs CallSite) String() string {
	if cs.File == "" {
		return "unknown"
	}
	return cs.File + ":" + strconv.Itoa(cs.Line)
}

// callerSite returns the location of the skip-th caller of
// the function invoking callerSite, where zero is its direct caller.
func callerSite(skip int) CallSite {
	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return CallSite{}
	}
	return CallSite{File: file, Line: line}
}

// Translator translates platform error codes to [result.Code].
//
// The zero value is ready to use and does not emit diagnostics.
//
// A [*Translator] is safe for concurrent use by multiple goroutines as long
// as you don't modify its fields after construction and the ReportFunc you
// may set is also safe.
type Translator struct {
	// Logger is the optional structured logger used to report codes
	// missing from the table. If this field is nil, and ReportFunc is
	// also nil, we will not be emitting diagnostics.
	Logger *slog.Logger

	// ReportFunc is the optional function called once for each code
	// missing from the table. When set, it takes precedence over Logger.
	ReportFunc func(errno syscall.Errno, site CallSite)
}

// DefaultTranslator is the default [*Translator] used by this package.
var DefaultTranslator = &Translator{}

// TranslateAt returns the [result.Code] for errno, using file and line
// to describe the failing call site if errno is not in the table.
func (tx *Translator) TranslateAt(errno syscall.Errno, file string, line int) result.Code {
	if code, found := Lookup(errno); found {
		return code
	}
	tx.reportUnexpected(errno, CallSite{File: file, Line: line})
	return result.Unexpected
}

// Translate is like [Translator.TranslateAt] but uses the location of
// its caller as the call site.
func (tx *Translator) Translate(errno syscall.Errno) result.Code {
	return tx.translateCaller(errno, 1)
}

// FromError returns the [result.Code] for a Go error.
//
// The nil error maps to [result.Success]. A [syscall.Errno] anywhere in
// the chain is translated like [Translator.Translate] does, using the
// location of the caller of FromError. Deadline errors map to
// [result.TimedOut]. Any other error maps to [result.Unexpected] without
// emitting diagnostics, since there is no platform code to report.
func (tx *Translator) FromError(err error) result.Code {
	return tx.fromError(err, 1)
}

// translateCaller translates errno using the location depth frames
// above translateCaller's caller as the call site.
func (tx *Translator) translateCaller(errno syscall.Errno, depth int) result.Code {
	if code, found := Lookup(errno); found {
		return code
	}
	tx.reportUnexpected(errno, callerSite(depth))
	return result.Unexpected
}

func (tx *Translator) fromError(err error, depth int) result.Code {
	if err == nil {
		return result.Success
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return tx.translateCaller(errno, depth+1)
	}
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return result.TimedOut
	}
	return result.Unexpected
}

// reportUnexpected emits the diagnostic for a code missing from the table.
func (tx *Translator) reportUnexpected(errno syscall.Errno, site CallSite) {
	if tx == nil {
		return
	}

	// the diagnostic is advisory: a panic in ReportFunc or in the
	// Logger's handler is absorbed here and never reaches the caller
	defer func() {
		_ = recover()
	}()

	if tx.ReportFunc != nil {
		tx.ReportFunc(errno, site)
		return
	}

	if tx.Logger != nil {
		tx.Logger.Error(
			"errnoUnexpected",
			slog.Int64("errno", int64(errno)),
			slog.String("errStr", errno.Error()),
			slog.String("errClass", errClassOf(errno)),
			slog.String("file", site.File),
			slog.Int("line", site.Line),
		)
	}
}

// Translate is like [Translator.Translate] but uses [DefaultTranslator].
func Translate(errno syscall.Errno) result.Code {
	return DefaultTranslator.translateCaller(errno, 1)
}

// TranslateAt is like [Translator.TranslateAt] but uses [DefaultTranslator].
func TranslateAt(errno syscall.Errno, file string, line int) result.Code {
	return DefaultTranslator.TranslateAt(errno, file, line)
}

// FromError is like [Translator.FromError] but uses [DefaultTranslator].
func FromError(err error) result.Code {
	return DefaultTranslator.fromError(err, 1)
}
