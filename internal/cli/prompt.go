package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/boothcalc/internal/errors"
)

// Operands holds the two factors and which of them are already known.
type Operands struct {
	Multiplicand    int64
	Multiplier      int64
	HasMultiplicand bool
	HasMultiplier   bool
}

// PromptOperands asks on in for the operands ops does not have yet, writing
// the prompts to out, and returns ops with both filled in. An unparsable
// answer is a ValidationError; input that ends early is io.ErrUnexpectedEOF.
func PromptOperands(in io.Reader, out io.Writer, ops Operands) (Operands, error) {
	reader := bufio.NewReader(in)
	var err error
	if !ops.HasMultiplicand {
		if ops.Multiplicand, err = promptInt(reader, out, "Multiplicand: ", "multiplicand"); err != nil {
			return ops, err
		}
		ops.HasMultiplicand = true
	}
	if !ops.HasMultiplier {
		if ops.Multiplier, err = promptInt(reader, out, "Multiplier: ", "multiplier"); err != nil {
			return ops, err
		}
		ops.HasMultiplier = true
	}
	return ops, nil
}

func promptInt(reader *bufio.Reader, out io.Writer, prompt, field string) (int64, error) {
	fmt.Fprint(out, prompt)
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, err
	}
	line = strings.TrimSpace(line)
	v, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, apperrors.ValidationError{Field: field, Message: fmt.Sprintf("%q is not a signed integer", line)}
	}
	return v, nil
}
