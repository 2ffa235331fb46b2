package scanner

import "github.com/db47h/tslex"

type options struct {
	skipComments bool
	errorHandler func(err *tslex.Error)
}

// An Option is a configuration option for a new Scanner.
//
type Option func(*options)

// SkipComments configures the scanner to drop comment tokens (single line,
// block and documentation comments) from its output.
//
func SkipComments() Option {
	return func(o *options) {
		o.skipComments = true
	}
}

// ErrorHandler defines a custom error handler callback. It is called for
// every lexing error, in order, right before the error is returned to the
// caller. A typical handler reports errors to a diagnostic stream:
//
//	scanner.New(f, scanner.ErrorHandler(func(err *tslex.Error) {
//		err.Report(os.Stderr)
//	}))
//
func ErrorHandler(f func(err *tslex.Error)) Option {
	return func(o *options) {
		o.errorHandler = f
	}
}
