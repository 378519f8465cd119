package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "width")
	Short     string   // short flag without "-" (e.g., "w")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "bits")
	IsAlgo    bool     // true if values come from algorithm list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "multiplicand", Short: "a", Help: "Multiplicand", ValueName: "integer"},
	{Long: "multiplier", Short: "b", Help: "Multiplier", ValueName: "integer"},
	{Long: "width", Short: "w", Help: "Register width in bits", Values: []string{"4", "6", "8", "12", "16", "32"}, ValueName: "bits"},
	{Long: "algo", Help: "Algorithm to use", IsAlgo: true, ValueName: "algorithm"},
	{Long: "trace", Short: "t", Help: "Print the iteration trace"},
	{Long: "quiet", Short: "q", Help: "Print only the product"},
	{Long: "verbose", Short: "v", Help: "Verbose output"},
	{Long: "interactive", Short: "i", Help: "Start the interactive REPL"},
	{Long: "tui", Help: "Step through the multiplication"},
	{Long: "exhaustive", Help: "Verify every operand pair"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "theme", Help: "Color theme", Values: []string{"dark", "light", "none"}, ValueName: "theme"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh"
// or "fish") to out. algorithms are offered as values of --algo, together
// with "all".
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish)", shell)
	}
}

// flagForms returns the "-x" and "--long" spellings of f.
func flagForms(f FlagCompletion) []string {
	var forms []string
	if f.Short != "" {
		forms = append(forms, "-"+f.Short)
	}
	if f.Long != "" {
		forms = append(forms, "--"+f.Long)
	}
	return forms
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	var caseBody strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, flagForms(f)...)

		var words string
		switch {
		case f.IsAlgo:
			words = "${algorithms}"
		case len(f.Values) > 0:
			words = strings.Join(f.Values, " ")
		default:
			continue
		}
		fmt.Fprintf(&caseBody, "        %s)\n", strings.Join(flagForms(f), "|"))
		fmt.Fprintf(&caseBody, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", words)
		caseBody.WriteString("            return 0\n            ;;\n")
	}

	script := fmt.Sprintf(`# Bash completion script for boothcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_boothcalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available algorithms
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _boothcalc_completions boothcalc
`, strings.Join(opts, " "), strings.Join(algorithms, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, algorithms []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef boothcalc

# Zsh completion script for boothcalc
# Add this to your ~/.zshrc or place in $fpath

_boothcalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_boothcalc "$@"
`, strings.Join(algorithms, " "), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	switch {
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for boothcalc",
		"# Add this to ~/.config/fish/completions/boothcalc.fish",
		"",
		"# Disable file completion by default",
		"complete -c boothcalc -f",
		"",
	}
	algoList := strings.Join(algorithms, " ")
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c boothcalc"}
	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}
