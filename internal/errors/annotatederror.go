// Package errors provides error annotation with slog attributes and source locations.
//
// It re-exports the parts of the standard errors package that the application
// uses so that call sites only need a single errors import.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError is an error carrying slog attributes and the source location
// where it was created.
type AnnotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	pc          uintptr
}

// New re-exports [errors.New].
func New(text string) error {
	return stderrors.New(text)
}

// NewSentinel creates a sentinel error with the caller's source location attached.
func NewSentinel(msg string, annotations ...slog.Attr) error {
	return &AnnotatedError{
		msg:         msg,
		err:         nil,
		annotations: annotations,
		pc:          caller(1),
	}
}

// Wrap annotates err with a message and optional slog attributes.
//
// The resulting error message is "msg: err" and the annotations are surfaced
// by [SlogError] when the error is logged.
func Wrap(err error, msg string, annotations ...slog.Attr) error {
	return &AnnotatedError{
		msg:         msg,
		err:         err,
		annotations: annotations,
		pc:          caller(1),
	}
}

// DecoratePanic converts a recovered panic value into an annotated error
// pointing at the panic site.
func DecoratePanic(recovered any) error {
	const panicDepth = 3 // DecoratePanic -> deferred closure -> panicking function
	return &AnnotatedError{
		msg:         fmt.Sprintf("panic: %v", recovered),
		err:         nil,
		annotations: nil,
		pc:          caller(panicDepth),
	}
}

// caller returns the program counter skip frames above the caller of caller.
func caller(skip int) uintptr {
	var pcs [1]uintptr
	runtime.Callers(skip+2, pcs[:]) //nolint:mnd // skip runtime.Callers and caller itself.
	return pcs[0]
}

func (e *AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *AnnotatedError) Unwrap() error {
	return e.err
}

// source resolves the recorded program counter to a "file:line" string.
func (e *AnnotatedError) source() string {
	if e.pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{e.pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", frame.File, frame.Line)
}

// Is re-exports [errors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As re-exports [errors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap re-exports [errors.Unwrap].
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Join re-exports [errors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// SlogError converts an error into a slog.Attr with the error message, the
// source location of the outermost annotated error, and all annotations
// collected from the error chain grouped under "annotations".
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	var (
		annotations []slog.Attr
		source      string
	)
	collectAnnotations(err, &annotations, &source)

	attrs := []any{slog.String("msg", err.Error())}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		groupArgs := make([]any, 0, len(annotations))
		for _, a := range annotations {
			groupArgs = append(groupArgs, a)
		}
		attrs = append(attrs, slog.Group("annotations", groupArgs...))
	}
	return slog.Group("error", attrs...)
}

// collectAnnotations walks the error chain, including joined errors, gathering
// annotations and the source of the first annotated error encountered.
func collectAnnotations(err error, annotations *[]slog.Attr, source *string) {
	if err == nil {
		return
	}

	var annotated *AnnotatedError
	if stderrors.As(err, &annotated) && annotated != nil {
		if *source == "" {
			*source = annotated.source()
		}
		*annotations = append(*annotations, annotated.annotations...)
		collectAnnotations(annotated.err, annotations, source)
		return
	}

	switch unwrapped := err.(type) { //nolint:errorlint // walking the chain manually.
	case interface{ Unwrap() error }:
		collectAnnotations(unwrapped.Unwrap(), annotations, source)
	case interface{ Unwrap() []error }:
		for _, joined := range unwrapped.Unwrap() {
			collectAnnotations(joined, annotations, source)
		}
	}
}
