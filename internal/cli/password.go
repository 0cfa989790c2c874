package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Picocrypt/zxcvbn-go"
	"golang.org/x/term"
)

var (
	ErrPasswordMismatch = errors.New("passphrases do not match")
	ErrPasswordEmpty    = errors.New("passphrase cannot be empty")
)

// minPassphraseScore is the zxcvbn score (0-4) below which encrypt warns.
const minPassphraseScore = 3

// terminalFd returns the file descriptor of in if it is an interactive terminal.
func terminalFd(in io.Reader) (int, bool) {
	f, ok := in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// readLine reads one line and strips the line ending.
// A final line without a newline is accepted.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// readPasswordSecure prompts on out and reads a passphrase from in without echo.
// Falls back to a buffered line read if in is not a terminal.
func readPasswordSecure(in *bufio.Reader, fd int, tty bool, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	if !tty {
		// stdin is piped; read normally
		pw, err := readLine(in)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return pw, nil
	}

	// Terminal mode: disable echo
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(out) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return string(pw), nil
}

// ReadPasswordInteractive prompts for a passphrase.
// If confirm is true, asks for it twice (for encryption).
func ReadPasswordInteractive(in io.Reader, out io.Writer, confirm bool) (string, error) {
	fd, tty := terminalFd(in)
	br := bufio.NewReader(in)

	password, err := readPasswordSecure(br, fd, tty, out, "Passphrase: ")
	if err != nil {
		return "", err
	}

	if password == "" {
		return "", ErrPasswordEmpty
	}

	if confirm {
		again, err := readPasswordSecure(br, fd, tty, out, "Confirm passphrase: ")
		if err != nil {
			return "", err
		}
		if password != again {
			return "", ErrPasswordMismatch
		}
	}

	return password, nil
}

// ReadPasswordFromStdin reads a passphrase line from in (for piped input with -P).
func ReadPasswordFromStdin(in io.Reader) (string, error) {
	pw, err := readLine(bufio.NewReader(in))
	if err != nil {
		return "", fmt.Errorf("reading passphrase from stdin: %w", err)
	}
	if pw == "" {
		return "", ErrPasswordEmpty
	}
	return pw, nil
}

// passphraseScore rates pw from 0 (trivial) to 4 (strong).
func passphraseScore(pw string) int {
	return zxcvbn.PasswordStrength(pw, nil).Score
}
