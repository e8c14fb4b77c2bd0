package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptSecret reads a secret without echoing when stdin is a TTY.
// Piped stdin reads a single line instead, so `kcpwd set key < file` works.
func promptSecret(label string, noInput bool) (string, error) {
	if noInput {
		return "", errors.New("interactive input disabled (--no-input)")
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, label)
		data, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return readLine(os.Stdin)
}

// confirm asks a yes/no question on stderr and reads the answer from stdin.
func confirm(label string) (bool, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := readLine(os.Stdin)
	if err != nil {
		return false, err
	}
	return isAffirmative(line), nil
}

// isAffirmative interprets a confirmation answer. Anything but y/yes is no.
func isAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// readLine reads one line, tolerating a missing trailing newline at EOF.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
