package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/MuhammadZain2005/Flask-Filler/internal/container"
)

const (
	// MaxFlasks bounds the flask count a description may declare.
	MaxFlasks = 1000
	// MaxLineLength bounds a description line once trimmed. Longer lines
	// are skipped with a warning.
	MaxLineLength = 64 * 1024
)

// warnTextLimit caps how much of an overlong line a warning keeps.
const warnTextLimit = 32

var ErrInvalidHeader = errors.New("description header must start with a flask count")

// directivePattern matches "<count>F<flask>" and nothing else.
var directivePattern = regexp.MustCompile(`^([0-9]+)F([0-9]+)$`)

// WarningReason says why a description line was skipped or cut short.
type WarningReason int

const (
	WarnQueueFull WarningReason = iota + 1
	WarnFlaskOutOfRange
	WarnStagingExhausted
	WarnFlaskFull
	WarnMalformedDirective
	WarnLineTooLong
)

func (r WarningReason) String() string {
	switch r {
	case WarnQueueFull:
		return "staging queue full"
	case WarnFlaskOutOfRange:
		return "flask number out of range"
	case WarnStagingExhausted:
		return "staging queue exhausted"
	case WarnFlaskFull:
		return "flask full"
	case WarnMalformedDirective:
		return "malformed directive"
	case WarnLineTooLong:
		return "line too long"
	default:
		return "unknown"
	}
}

// LoadWarning records a non-fatal problem with one description line.
// Remaining is the number of units a directive could not move.
type LoadWarning struct {
	Line      int
	Text      string
	Reason    WarningReason
	Remaining int
}

func (w LoadWarning) String() string {
	switch w.Reason {
	case WarnQueueFull:
		return fmt.Sprintf("line %d: queue is full, can't add %q", w.Line, w.Text)
	case WarnStagingExhausted, WarnFlaskFull:
		return fmt.Sprintf("line %d: %s: %s, %d unit(s) not moved", w.Line, w.Text, w.Reason, w.Remaining)
	default:
		return fmt.Sprintf("line %d: %s: %s", w.Line, w.Text, w.Reason)
	}
}

// directive is a parsed "<count>F<flask>" line. flask is one-based.
type directive struct {
	count int
	flask int
}

// parseDirective reports whether line has the directive shape, and if so
// its numbers. ok is true and err non-nil when the digits overflow int.
func parseDirective(line string) (d directive, ok bool, err error) {
	m := directivePattern.FindStringSubmatch(line)
	if m == nil {
		return directive{}, false, nil
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return directive{}, true, err
	}
	flask, err := strconv.Atoi(m[2])
	if err != nil {
		return directive{}, true, err
	}
	return directive{count: count, flask: flask}, true, nil
}

// loader holds the state of one Load call.
type loader struct {
	flasks   []*Flask
	staging  *container.Queue[Chemical]
	warnings []LoadWarning
}

// Load parses a puzzle description into flasks.
//
// The first line's first token is the flask count. Each following line is
// either a directive "<count>F<flask>", which moves up to count units from
// the front of the staging queue into the one-based flask, or otherwise a
// chemical label to enqueue. Blank lines are ignored. Problems with single
// lines, including lines over MaxLineLength, are returned as warnings; only
// an unreadable header or a failing reader is an error.
// Units still staged at the end are discarded. An empty description yields
// zero flasks.
func Load(r io.Reader) ([]*Flask, []LoadWarning, error) {
	lines := bufio.NewReader(r)

	header, err := lines.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("failed to read description: %w", err)
	}
	if header == "" {
		return []*Flask{}, nil, nil
	}
	n, perr := parseHeader(header)
	if perr != nil {
		return nil, nil, perr
	}

	l := &loader{
		flasks:  NewFlasks(n),
		staging: container.NewQueue[Chemical](StagingCapacity),
	}

	for lineNo := 2; err == nil; lineNo++ {
		var raw string
		raw, err = lines.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("failed to read description: %w", err)
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if len(line) > MaxLineLength {
			l.warn(lineNo, line[:warnTextLimit]+"...", WarnLineTooLong, 0)
			continue
		}
		if perr := l.processLine(lineNo, line); perr != nil {
			return nil, nil, perr
		}
	}

	return l.flasks, l.warnings, nil
}

// LoadString is Load over an in-memory description.
func LoadString(text string) ([]*Flask, []LoadWarning, error) {
	return Load(strings.NewReader(text))
}

// parseHeader reads the flask count from the first line.
func parseHeader(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: first line is blank", ErrInvalidHeader)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidHeader, fields[0])
	}
	if n < 0 || n > MaxFlasks {
		return 0, fmt.Errorf("%w: count %d must be in range [0, %d]", ErrInvalidHeader, n, MaxFlasks)
	}
	return n, nil
}

func (l *loader) warn(line int, text string, reason WarningReason, remaining int) {
	l.warnings = append(l.warnings, LoadWarning{Line: line, Text: text, Reason: reason, Remaining: remaining})
}

func (l *loader) processLine(lineNo int, line string) error {
	d, isDirective, err := parseDirective(line)
	if !isDirective {
		if l.staging.IsFull() {
			l.warn(lineNo, line, WarnQueueFull, 0)
			return nil
		}
		return l.staging.Enqueue(Chemical(line))
	}
	if err != nil {
		l.warn(lineNo, line, WarnMalformedDirective, 0)
		return nil
	}
	if d.flask < 1 || d.flask > len(l.flasks) {
		l.warn(lineNo, line, WarnFlaskOutOfRange, d.count)
		return nil
	}

	flask := l.flasks[d.flask-1]
	for remaining := d.count; remaining > 0; remaining-- {
		if l.staging.IsEmpty() {
			l.warn(lineNo, line, WarnStagingExhausted, remaining)
			break
		}
		if flask.IsFull() {
			l.warn(lineNo, line, WarnFlaskFull, remaining)
			break
		}
		unit, err := l.staging.Dequeue()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
		if err := flask.Push(unit); err != nil {
			return fmt.Errorf("%w: %w", ErrInconsistentState, err)
		}
	}
	return nil
}

// Describe writes a description that Load parses back into flasks.
// Labels that are blank or shaped like a directive do not survive the trip.
func Describe(flasks []*Flask) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", len(flasks))
	for i, f := range flasks {
		if f.IsEmpty() {
			continue
		}
		for _, u := range f.Items() {
			sb.WriteString(string(u))
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%dF%d\n", f.Size(), i+1)
	}
	return sb.String()
}
