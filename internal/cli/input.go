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

	"github.com/Dns2690/Rentals/internal/validate"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
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

// GetValidated re-prompts until ok accepts the entered value, so invalid
// field input never leaves the console boundary. Read errors end the loop.
func GetValidated(reader *bufio.Reader, prompt string, w io.Writer, ok func(string) bool) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if !ok(s) {
			fmt.Fprintln(w, "Valor inválido, intente de nuevo.")
			continue
		}
		return s, nil
	}
}

// GetInt reads lines until one parses as a base-10 integer.
func GetInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	s, err := GetValidated(reader, prompt, w, func(s string) bool {
		_, convErr := strconv.Atoi(s)
		return convErr == nil
	})
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// GetOptionalInt is GetInt with an escape hatch: an empty line returns zero,
// which edit flows interpret as "keep the stored value".
func GetOptionalInt(reader *bufio.Reader, prompt string, w io.Writer) (int, error) {
	s, err := GetValidated(reader, prompt, w, func(s string) bool {
		if s == "" {
			return true
		}
		_, convErr := strconv.Atoi(s)
		return convErr == nil
	})
	if err != nil || s == "" {
		return 0, err
	}
	return strconv.Atoi(s)
}

// alphabetic and alphanumeric adapt the field validators to prompt checks.
func alphabetic(min int) func(string) bool {
	return func(s string) bool { return validate.Alphabetic(s, min) }
}

func alphanumeric(min int) func(string) bool {
	return func(s string) bool { return validate.Alphanumeric(s, min) }
}

// GetPassword prints a prompt to w and reads a password from the user's
// terminal without echo. A newline is printed after the read to keep the
// UI tidy.
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
