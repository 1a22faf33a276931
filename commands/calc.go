package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/josephlewis42/rshell/core/vos"
)

const (
	calcWelcome         = "Welcome to the CLI Calculator"
	calcFirstPrompt     = "Please enter the first value:"
	calcOperationPrompt = "Please enter the operation (+, -, *, /):"
	calcSecondPrompt    = "Please enter the second value:"
	calcResultFmt       = "The result is: %d\n"

	calcInvalidNumber    = "Please enter a valid number"
	calcInvalidOperation = "Invalid operation entered. Please use +, -, *, or /."
	calcDivideByZero     = "Cannot divide by zero."
)

// Calc reads two operands and an operator and prints the result once.
//
// Invalid input stops the program right away with a message and a zero exit
// code. Dividing by zero is reported on stderr with exit code 1.
func Calc(virtOS vos.VOS) int {
	lines, err := newLineReader(virtOS)
	if err != nil {
		fmt.Fprintf(virtOS.Stderr(), "calc: %s\n", err)
		return 1
	}
	defer lines.Close()

	w := virtOS.Stdout()

	fmt.Fprintln(w, calcWelcome)
	fmt.Fprintln(w, calcFirstPrompt)
	first, err := readOperand(lines)
	if err != nil {
		virtOS.LogInvalidInvocation(virtOS.Args(), err)
		fmt.Fprintln(w, calcInvalidNumber)
		return 0
	}

	fmt.Fprintln(w, calcOperationPrompt)
	op, err := readOperation(lines)
	if err != nil {
		virtOS.LogInvalidInvocation(virtOS.Args(), err)
		fmt.Fprintln(w, calcInvalidOperation)
		return 0
	}

	fmt.Fprintln(w, calcSecondPrompt)
	second, err := readOperand(lines)
	if err != nil {
		virtOS.LogInvalidInvocation(virtOS.Args(), err)
		fmt.Fprintln(w, calcInvalidNumber)
		return 0
	}

	result, err := op.Apply(first, second)
	if errors.Is(err, ErrDivideByZero) {
		virtOS.LogInvalidInvocation(virtOS.Args(), err)
		fmt.Fprintln(virtOS.Stderr(), calcDivideByZero)
		return 1
	}
	if err != nil {
		fmt.Fprintf(virtOS.Stderr(), "calc: %s\n", err)
		return 1
	}

	virtOS.LogRunCommand([]string{strconv.FormatInt(first, 10), op.String(), strconv.FormatInt(second, 10)})
	fmt.Fprintf(w, calcResultFmt, result)
	return 0
}

func readOperand(lines lineReader) (int64, error) {
	line, err := lines.ReadLine("")
	if err != nil {
		return 0, fmt.Errorf("reading operand: %w", err)
	}

	return strconv.ParseInt(strings.TrimSpace(line), 10, 64)
}

func readOperation(lines lineReader) (Operation, error) {
	line, err := lines.ReadLine("")
	if err != nil {
		return 0, fmt.Errorf("reading operation: %w", err)
	}

	token := strings.TrimSpace(line)
	op, ok := ParseOperation(token)
	if !ok {
		return 0, fmt.Errorf("unknown operation %q", token)
	}
	return op, nil
}

func init() {
	mustAddCmd("calc", Calc)
}
