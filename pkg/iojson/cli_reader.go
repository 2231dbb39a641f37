package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON document of type T from the file named by its
// flag, or from stdin when the flag is unset.
type FileReader[T any] struct {
	fileFlagValue string

	// Stdin overrides os.Stdin. Used by tests.
	Stdin io.Reader

	// IsTerminal overrides term.IsTerminal. Used by tests.
	IsTerminal func(fd int) bool
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Provided reports whether input is available without blocking on a
// terminal: either a file was named or stdin is not a TTY.
func (fr *FileReader[T]) Provided() bool {
	if fr.fileFlagValue != "" || fr.Stdin != nil {
		return true
	}
	return !fr.stdinIsTerminal()
}

func (fr *FileReader[T]) stdinIsTerminal() bool {
	isTerminal := term.IsTerminal
	if fr.IsTerminal != nil {
		isTerminal = fr.IsTerminal
	}
	return isTerminal(int(os.Stdin.Fd()))
}

func (fr *FileReader[T]) Read() (T, error) {
	var input T

	reader, closer, err := fr.open()
	if err != nil {
		return input, err
	}
	defer closer()

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func (fr *FileReader[T]) open() (io.Reader, func(), error) {
	noop := func() {}

	switch {
	case fr.fileFlagValue != "":
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return nil, noop, fmt.Errorf("open file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	case fr.Stdin != nil:
		return fr.Stdin, noop, nil
	case fr.stdinIsTerminal():
		return nil, noop, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	default:
		return os.Stdin, noop, nil
	}
}
