package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. A newline is printed after the read to keep the UI
// tidy.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// SelectOption prints a numbered list of options and reads the user's pick.
// The user may answer with the number or the exact option text.
func SelectOption(reader *bufio.Reader, prompt string, options []string, w io.Writer) (string, error) {
	fmt.Fprintln(w, prompt)
	for i, opt := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, opt)
	}

	answer, err := GetSimpleText(reader, "Enter number", w)
	if err != nil {
		return "", err
	}

	if n, convErr := strconv.Atoi(answer); convErr == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("choice %d is out of range", n)
		}
		return options[n-1], nil
	}
	for _, opt := range options {
		if opt == answer {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unknown option %q", answer)
}
