package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/agbru/boothcalc/internal/app.Version=v1.2.0 \
//	  -X github.com/agbru/boothcalc/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args (without the program name) request
// version information. It is checked before flag parsing so that
// "--version" works alongside otherwise invalid arguments.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V", "--V":
			return true
		case "--":
			return false
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "boothcalc %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
