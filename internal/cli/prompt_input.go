package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// promptYesNoWithDefaultIO prints message and reads a y/n answer from in.
// A blank line selects defaultYes; a read error counts as no.
func promptYesNoWithDefaultIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := readPromptLine(in)
	if err != nil {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(text)) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	default:
		return false
	}
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var line []byte
	var one [1]byte
	for {
		n, err := in.Read(one[:])
		if n > 0 {
			if one[0] == '\n' || one[0] == '\r' {
				return string(line), nil
			}
			line = append(line, one[0])
		}
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return string(line), nil
		}
		if err != nil {
			return string(line), err
		}
	}
}
