package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// readSecretLine reads one line from standard input with terminal echo
// disabled, so the secret never appears on screen. When stdin is not a
// terminal (a pipe or a file) it falls back to a plain line read. The
// returned buffer belongs to the caller, who is expected to wipe it.
func readSecretLine() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		os.Stderr.WriteString("\n")
		if err != nil {
			return nil, errors.Wrap(err, "reading secret")
		}
		return b, nil
	}
	line, err := readLine(bufio.NewReader(os.Stdin))
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// readLine returns the next input line without its trailing newline. A
// final unterminated line is accepted; a bare EOF is an error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", errors.Wrap(err, "reading input")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
