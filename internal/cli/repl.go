package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/boothcalc/internal/booth"
	"github.com/agbru/boothcalc/internal/config"
	"github.com/agbru/boothcalc/internal/orchestration"
	"github.com/agbru/boothcalc/internal/twoscomp"
	"github.com/agbru/boothcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultAlgo is the algorithm selected at startup.
	DefaultAlgo string
	// Width is the initial register width.
	Width int
	// Trace prints the iteration table with every product.
	Trace bool
	// Observer receives the events of every multiplication, e.g. a
	// booth.LoggingObserver in verbose mode. May be nil.
	Observer booth.Observer
}

// REPL represents an interactive multiplication session.
type REPL struct {
	config      REPLConfig
	factory     booth.CalculatorFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new REPL instance. An empty or "all" DefaultAlgo
// selects the first registered algorithm.
func NewREPL(factory booth.CalculatorFactory, cfg REPLConfig) *REPL {
	currentAlgo := cfg.DefaultAlgo
	if currentAlgo == "" || currentAlgo == config.AlgoAll {
		if names := factory.List(); len(names) > 0 {
			currentAlgo = names[0]
		}
	}
	if cfg.Width == 0 {
		cfg.Width = config.DefaultWidth
	}

	return &REPL{
		config:      cfg,
		factory:     factory,
		currentAlgo: currentAlgo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"booth> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sBooth Multiplier - Interactive Mode%s                  %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smul <a> <b>%s     - Multiply with the current algorithm (or just type: <a> <b>)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scompare <a> <b>%s - Multiply with every algorithm and compare\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %swidth <n>%s       - Set the register width (1-%d)\n", ui.ColorYellow(), ui.ColorReset(), config.MaxWidth)
	fmt.Fprintf(r.out, "  %salgo <name>%s     - Change algorithm (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(r.factory.List(), ", "))
	fmt.Fprintf(r.out, "  %strace%s           - Toggle the iteration trace\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sencode <v>%s      - Show v in two's complement at the current width\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sdecode <bits>%s   - Decode a two's-complement bit-string\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s          - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s            - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s     - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "mul", "m":
		r.cmdMul(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "width", "w":
		r.cmdWidth(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "trace", "t":
		r.cmdTrace()
	case "encode", "enc":
		r.cmdEncode(args)
	case "decode", "dec":
		r.cmdDecode(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Two bare integers are a quick multiplication.
		if len(parts) == 2 {
			if _, err := strconv.ParseInt(parts[0], 10, 64); err == nil {
				r.cmdMul(parts)
				return true
			}
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}

	return true
}

// parseOperands reads "<a> <b>" for the named command.
func (r *REPL) parseOperands(cmd string, args []string) (int64, int64, bool) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <a> <b>%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		return 0, 0, false
	}
	a, errA := strconv.ParseInt(args[0], 10, 64)
	b, errB := strconv.ParseInt(args[1], 10, 64)
	if errA != nil || errB != nil {
		fmt.Fprintf(r.out, "%sInvalid operands: %s %s%s\n", ui.ColorRed(), args[0], args[1], ui.ColorReset())
		return 0, 0, false
	}
	return a, b, true
}

// cmdMul multiplies with the current algorithm.
func (r *REPL) cmdMul(args []string) {
	a, b, ok := r.parseOperands("mul", args)
	if !ok {
		return
	}
	calc, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%sAlgorithm not found: %s%s\n", ui.ColorRed(), r.currentAlgo, ui.ColorReset())
		return
	}

	results := orchestration.ExecuteMultiplications([]booth.Calculator{calc}, r.request(a, b))
	res := results[0]
	if res.Err != nil {
		CLIResultPresenter{}.HandleError(res.Err, r.out)
		return
	}
	DisplayResult(res, r.presentation(a, b), r.out)
	fmt.Fprintln(r.out)
}

// cmdCompare multiplies with every algorithm.
func (r *REPL) cmdCompare(args []string) {
	a, b, ok := r.parseOperands("compare", args)
	if !ok {
		return
	}
	req := r.request(a, b)
	req.Trace = false
	results := orchestration.ExecuteMultiplications(r.factory.GetAll(), req)
	presenter := CLIResultPresenter{}
	orchestration.AnalyzeComparisonResults(results, r.presentation(a, b), presenter, presenter, r.out)
	fmt.Fprintln(r.out)
}

func (r *REPL) request(a, b int64) orchestration.Request {
	return orchestration.Request{
		Multiplicand: a,
		Multiplier:   b,
		Width:        r.config.Width,
		Trace:        r.config.Trace,
		Observer:     r.config.Observer,
	}
}

func (r *REPL) presentation(a, b int64) orchestration.PresentationOptions {
	return orchestration.PresentationOptions{
		Multiplicand: a,
		Multiplier:   b,
		Width:        r.config.Width,
		Trace:        r.config.Trace,
	}
}

// cmdWidth changes the register width.
func (r *REPL) cmdWidth(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: width <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > config.MaxWidth {
		fmt.Fprintf(r.out, "%sInvalid width: %s (expected 1-%d)%s\n", ui.ColorRed(), args[0], config.MaxWidth, ui.ColorReset())
		return
	}
	r.config.Width = n
	lo, hi, _ := twoscomp.Range(n)
	fmt.Fprintf(r.out, "Width set to %s%d%s bits (operands in [%d, %d])\n", ui.ColorGreen(), n, ui.ColorReset(), lo, hi)
}

// cmdAlgo handles the "algo" command.
func (r *REPL) cmdAlgo(args []string) {
	available := strings.Join(r.factory.List(), ", ")
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", available)
		return
	}

	name := strings.ToLower(args[0])
	calc, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown algorithm: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available algorithms: %s\n", available)
		return
	}

	r.currentAlgo = name
	fmt.Fprintf(r.out, "Algorithm changed to: %s%s%s (%s)\n", ui.ColorGreen(), name, ui.ColorReset(), calc.Description())
}

// cmdTrace toggles the iteration trace.
func (r *REPL) cmdTrace() {
	r.config.Trace = !r.config.Trace
	fmt.Fprintf(r.out, "Iteration trace: %s%s%s\n", ui.ColorGreen(), onOff(r.config.Trace), ui.ColorReset())
}

// cmdEncode prints the two's-complement form of a value.
func (r *REPL) cmdEncode(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: encode <value>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	v, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	bits, err := twoscomp.Encode(v, r.config.Width)
	if err != nil {
		CLIResultPresenter{}.HandleError(err, r.out)
		return
	}
	fmt.Fprintf(r.out, "  %d = %s%s%s (%d bits)\n", v, ui.ColorCyan(), bits, ui.ColorReset(), r.config.Width)
}

// cmdDecode prints the value of a two's-complement bit-string.
func (r *REPL) cmdDecode(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: decode <bits>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	v, err := twoscomp.Decode(args[0])
	if err != nil {
		CLIResultPresenter{}.HandleError(err, r.out)
		return
	}
	fmt.Fprintf(r.out, "  %s = %s%d%s\n", args[0], ui.ColorCyan(), v, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	lo, hi, _ := twoscomp.Range(r.config.Width)
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Algorithm:  %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Width:      %s%d%s bits, operands in [%d, %d]\n", ui.ColorCyan(), r.config.Width, ui.ColorReset(), lo, hi)
	fmt.Fprintf(r.out, "  Trace:      %s%s%s\n", ui.ColorCyan(), onOff(r.config.Trace), ui.ColorReset())
	fmt.Fprintln(r.out)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
