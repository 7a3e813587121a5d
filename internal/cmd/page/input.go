package page

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// readInput returns the contents of path, or of stdin when path is empty
// or "-". An injected stdin takes precedence over os.Stdin.
func readInput(path string, stdin io.Reader) (string, error) {
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if stdin == nil {
		if isTerminal() {
			return "", errors.New("no input: pass a file or pipe content on stdin")
		}
		stdin = os.Stdin
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// isTerminal checks if stdin is a terminal
func isTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
