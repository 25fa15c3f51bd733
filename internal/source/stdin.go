package source

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/vitachoice/toastui/internal/toast"
)

// StdinSource reads the line protocol from standard input.
//
// Three line shapes are understood:
//
//	success: saved 3 rows      kind prefix and message
//	plain text                 info toast with the line as message
//	{"error": "bad input"}     JSON value fed whole into normalization
type StdinSource struct {
	reader io.Reader
}

// NewStdinSource creates a StdinSource reading from os.Stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{reader: os.Stdin}
}

// NewStdinSourceWithReader creates a StdinSource with a custom reader.
func NewStdinSourceWithReader(r io.Reader) *StdinSource {
	return &StdinSource{reader: r}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Run shows one toast per input line until the input closes.
// Cancellation is observed between lines; a read blocked on an open
// pipe ends only when the writer closes it.
func (s *StdinSource) Run(ctx context.Context, n Notifier) error {
	scanner := bufio.NewScanner(s.reader)
	const maxLine = 1024 * 1024 // 1MB max
	scanner.Buffer(make([]byte, 64*1024), maxLine)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		payload, kind := ParseLine(line)
		n.Show(payload, kind, 0)
	}

	if err := scanner.Err(); err != nil {
		return &FeedError{
			Source:  "stdin",
			Message: "failed to read stdin",
			Err:     err,
		}
	}

	return nil
}

// ParseLine interprets one line of the protocol. A JSON value comes
// back decoded with an error kind so the normalizer sees its structure;
// a leading "<kind>:" selects the kind for the rest of the line;
// anything else is an info message verbatim.
func ParseLine(line string) (any, toast.Kind) {
	if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
		var payload any
		if err := json.Unmarshal([]byte(line), &payload); err == nil {
			return payload, toast.KindError
		}
	}

	if prefix, rest, ok := strings.Cut(line, ":"); ok {
		if kind, err := toast.ParseKind(prefix); err == nil {
			return strings.TrimSpace(rest), kind
		}
	}

	return line, toast.KindInfo
}
