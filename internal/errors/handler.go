package apperrors

import (
	"fmt"
	"io"
)

// ColorProvider supplies the ANSI sequences used when printing errors.
// It keeps this package free of a dependency on the ui package.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleError prints a user-facing description of err to out and returns
// the matching exit code. Range and format errors get a hint line.
func HandleError(err error, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	code := ExitCodeFor(err)
	switch {
	case code == ExitErrorCanceled:
		fmt.Fprintf(out, "%sStatus: Canceled%s\n", colors.Yellow(), colors.Reset())
	case IsRangeError(err):
		fmt.Fprintf(out, "%sRange error: %v%s\n", colors.Red(), err, colors.Reset())
		fmt.Fprintf(out, "Hint: increase --width so that both operands fit.\n")
	case IsFormatError(err):
		fmt.Fprintf(out, "%sFormat error: %v%s\n", colors.Red(), err, colors.Reset())
	case code == ExitErrorConfig:
		fmt.Fprintf(out, "%sConfiguration error: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
