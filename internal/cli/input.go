package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/hitec/nhplus/internal/dates"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine reads one line, trimmed. A final line without newline is returned
// as is; io.EOF is only reported when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader.
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return readLine(reader)
}

// GetPassword prints a password prompt to w and reads a password from the
// terminal without echo. The caller should wipe the result.
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

// GetDate prompts for a "YYYY-MM-DD" date.
func GetDate(reader *bufio.Reader, prompt string, w io.Writer) (time.Time, error) {
	s, err := GetSimpleText(reader, prompt+" (YYYY-MM-DD)", w)
	if err != nil {
		return time.Time{}, err
	}
	return dates.ParseDate(s)
}

// GetTime prompts for an "HH:MM" time of day.
func GetTime(reader *bufio.Reader, prompt string, w io.Writer) (time.Time, error) {
	s, err := GetSimpleText(reader, prompt+" (HH:MM)", w)
	if err != nil {
		return time.Time{}, err
	}
	return dates.ParseTime(s)
}

// GetID prompts for a positive record id.
func GetID(reader *bufio.Reader, prompt string, w io.Writer) (int64, error) {
	s, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	return parseID(s)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
