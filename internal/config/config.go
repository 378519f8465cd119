// Package config parses the boothcalc command line and environment into an
// AppConfig.
package config

import (
	"flag"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/agbru/boothcalc/internal/errors"
)

const (
	// EnvPrefix prefixes every environment variable read by ParseConfig.
	EnvPrefix = "BOOTH_"

	// DefaultWidth is the register width used when none is given.
	DefaultWidth = 6

	// MaxWidth mirrors booth.MaxWidth: the 2N-bit product must fit an int64.
	MaxWidth = 32

	// MaxExhaustiveWidth bounds --exhaustive, which checks 4^N operand pairs.
	MaxExhaustiveWidth = 12

	// AlgoAll selects every registered algorithm and compares their products.
	AlgoAll = "all"
)

// AppConfig holds the resolved settings for one boothcalc run.
type AppConfig struct {
	Multiplicand int64
	Multiplier   int64
	// HasMultiplicand and HasMultiplier report which operands were supplied
	// by flags, positional arguments or the environment. HasOperands is set
	// when both were.
	HasMultiplicand bool
	HasMultiplier   bool
	HasOperands     bool
	Width       int
	Algo        string
	Trace       bool
	Quiet       bool
	Verbose     bool
	Interactive bool
	TUI         bool
	Exhaustive  bool
	NoColor     bool
	Theme       string
	Completion  string
}

// Validate checks cross-field constraints. Operand ranges are not checked
// here; the multiplier reports those as RangeError.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Width < 1 || c.Width > MaxWidth {
		return apperrors.NewConfigError("width must be between 1 and %d, got %d", MaxWidth, c.Width)
	}
	if c.Algo != AlgoAll && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unknown algorithm %q (available: %s, %s)",
			c.Algo, strings.Join(availableAlgos, ", "), AlgoAll)
	}
	if c.Exhaustive && c.Width > MaxExhaustiveWidth {
		return apperrors.NewConfigError("--exhaustive supports widths up to %d, got %d", MaxExhaustiveWidth, c.Width)
	}

	modes := 0
	for _, on := range []bool{c.Interactive, c.TUI, c.Exhaustive} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return apperrors.NewConfigError("--interactive, --tui and --exhaustive are mutually exclusive")
	}
	if c.Quiet && c.Trace {
		return apperrors.NewConfigError("--quiet and --trace are mutually exclusive")
	}
	if c.TUI && c.Algo == AlgoAll {
		return apperrors.NewConfigError("--tui steps through a single algorithm; choose one with --algo")
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (accepted: %s)",
			c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}

// SupportedShells lists the values accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// ParseConfig parses args (without the program name) into an AppConfig.
// Negative numbers are accepted as positional operands, so
// "boothcalc -3 4" multiplies -3 by 4. Environment variables prefixed with
// EnvPrefix fill in settings not given on the command line.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.Int64Var(&config.Multiplicand, "a", 0, "Multiplicand (signed integer).")
	fs.Int64Var(&config.Multiplicand, "multiplicand", 0, "Multiplicand (alias for -a).")
	fs.Int64Var(&config.Multiplier, "b", 0, "Multiplier (signed integer).")
	fs.Int64Var(&config.Multiplier, "multiplier", 0, "Multiplier (alias for -b).")
	fs.IntVar(&config.Width, "w", DefaultWidth, "Register width N in bits.")
	fs.IntVar(&config.Width, "width", DefaultWidth, "Register width N in bits (alias for -w).")
	fs.StringVar(&config.Algo, "algo", "booth", fmt.Sprintf("Algorithm to use: %s or %s.", strings.Join(availableAlgos, ", "), AlgoAll))
	fs.BoolVar(&config.Trace, "t", false, "Print the iteration trace.")
	fs.BoolVar(&config.Trace, "trace", false, "Print the iteration trace (alias for -t).")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode: print only the product.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode (alias for -q).")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output and debug logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Verbose output (alias for -v).")
	fs.BoolVar(&config.Interactive, "i", false, "Start the interactive REPL.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive REPL (alias for -i).")
	fs.BoolVar(&config.TUI, "tui", false, "Step through the multiplication in a terminal UI.")
	fs.BoolVar(&config.Exhaustive, "exhaustive", false, fmt.Sprintf("Verify every operand pair at the width (N <= %d).", MaxExhaustiveWidth))
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", "dark", "Color theme: dark, light or none.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")
	fs.Bool("version", false, "Print version information.")
	fs.Bool("V", false, "Print version information (alias for --version).")

	flagArgs, positionals := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		return AppConfig{}, err
	}
	positionals = append(positionals, fs.Args()...)

	applyEnvOverrides(&config, fs)

	// Positional operands take the slots -a and -b left empty, ahead of
	// any environment value.
	hasA := isFlagSetAny(fs, "a", "multiplicand")
	hasB := isFlagSetAny(fs, "b", "multiplier")
	if err := applyPositionals(&config, positionals, &hasA, &hasB); err != nil {
		return AppConfig{}, err
	}
	config.HasMultiplicand = hasA || envSet("MULTIPLICAND")
	config.HasMultiplier = hasB || envSet("MULTIPLIER")
	config.HasOperands = config.HasMultiplicand && config.HasMultiplier
	config.Algo = strings.ToLower(config.Algo)

	if err := config.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// applyPositionals assigns up to two positional operands to the slots not
// already filled by -a and -b.
func applyPositionals(config *AppConfig, positionals []string, hasA, hasB *bool) error {
	for _, raw := range positionals {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return apperrors.NewConfigError("invalid operand %q: expected a signed integer", raw)
		}
		switch {
		case !*hasA:
			config.Multiplicand, *hasA = v, true
		case !*hasB:
			config.Multiplier, *hasB = v, true
		default:
			return apperrors.NewConfigError("unexpected extra operand %q", raw)
		}
	}
	return nil
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// splitArgs separates flag arguments from positional operands. The flag
// package stops at the first non-flag and would read "-3" as an unknown
// flag, so negative numbers that are not flag values are pulled out here.
func splitArgs(fs *flag.FlagSet, args []string) (flagArgs, positionals []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flagArgs, append(positionals, args[i+1:]...)
		case negativeNumber.MatchString(arg):
			positionals = append(positionals, arg)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagArgs = append(flagArgs, arg)
			name := strings.TrimLeft(arg, "-")
			if strings.Contains(name, "=") {
				continue
			}
			if f := fs.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		default:
			positionals = append(positionals, arg)
		}
	}
	return flagArgs, positionals
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
