package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/boothcalc/internal/booth"
	"github.com/agbru/boothcalc/internal/cli"
	"github.com/agbru/boothcalc/internal/config"
	apperrors "github.com/agbru/boothcalc/internal/errors"
	"github.com/agbru/boothcalc/internal/logging"
	"github.com/agbru/boothcalc/internal/tui"
	"github.com/agbru/boothcalc/internal/ui"
)

// Application represents the boothcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   booth.CalculatorFactory
	ErrWriter io.Writer
	// Input supplies operands to the prompt and commands to the REPL.
	Input io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application.
func WithFactory(f booth.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader used for operand prompts and the REPL.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.Input = r }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, Input: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = booth.NewDefaultFactory()
	}

	programName := "boothcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor, a.Config.Theme)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.Interactive:
		return a.runREPL(out)
	case a.Config.Exhaustive:
		return a.runExhaustive(ctx, out)
	}

	if !a.Config.HasOperands {
		if code := a.promptOperands(out); code != apperrors.ExitSuccess {
			return code
		}
	}

	if a.Config.TUI {
		return a.runTUI(ctx)
	}
	return a.runCalculate(out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session on a.Input.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Width:       a.Config.Width,
		Trace:       a.Config.Trace,
		Observer:    a.observer(),
	})
	repl.SetInput(a.Input)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the step-through viewer.
func (a *Application) runTUI(ctx context.Context) int {
	calc, err := a.Factory.Get(a.Config.Algo)
	if err != nil {
		return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
	}
	code, err := tui.Run(ctx, calc, a.Config, Version)
	if err != nil {
		return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
	}
	return code
}

// promptOperands reads only the operands the command line left out. Prompts go
// to out unless quiet mode is on.
func (a *Application) promptOperands(out io.Writer) int {
	promptOut := out
	if a.Config.Quiet {
		promptOut = io.Discard
	}
	ops, err := cli.PromptOperands(a.Input, promptOut, cli.Operands{
		Multiplicand:    a.Config.Multiplicand,
		Multiplier:      a.Config.Multiplier,
		HasMultiplicand: a.Config.HasMultiplicand,
		HasMultiplier:   a.Config.HasMultiplier,
	})
	if err != nil {
		return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
	}
	a.Config.Multiplicand, a.Config.Multiplier = ops.Multiplicand, ops.Multiplier
	a.Config.HasMultiplicand, a.Config.HasMultiplier, a.Config.HasOperands = true, true, true
	return apperrors.ExitSuccess
}

// logger returns the application logger: JSON lines on ErrWriter in verbose
// mode, a discarding logger otherwise.
func (a *Application) logger() logging.Logger {
	if !a.Config.Verbose {
		return logging.NewNopLogger()
	}
	return logging.NewLogger(a.ErrWriter, "boothcalc")
}

// observer returns the per-iteration debug logger in verbose mode, nil
// otherwise.
func (a *Application) observer() booth.Observer {
	if !a.Config.Verbose {
		return nil
	}
	return booth.NewLoggingObserver(logging.NewLogger(a.ErrWriter, "booth"))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
