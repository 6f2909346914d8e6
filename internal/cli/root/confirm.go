package root

import (
	"bufio"
	"io"
	"strings"
)

// PromptConfirm asks a yes/no question on out and reads one line from in.
// Only y or yes accepts; a closed or nil input declines.
func PromptConfirm(in io.Reader, out io.Writer, message string) (bool, error) {
	if out != nil {
		if _, err := io.WriteString(out, message+" [y/N]: "); err != nil {
			return false, err
		}
	}
	if in == nil {
		return false, nil
	}
	sc := bufio.NewScanner(in)
	if !sc.Scan() {
		return false, sc.Err()
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
