package board

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MuhammadZain2005/Flask-Filler/internal/container"
)

// Puzzle constants
const (
	FlaskCapacity   = 4
	UnitsPerType    = 3
	StagingCapacity = 4
)

// Chemical is an opaque label identifying a chemical type, e.g. "AA".
type Chemical string

// Flask is a bounded stack of chemical units, bottom to top.
type Flask struct {
	*container.Stack[Chemical]
}

// NewFlask creates an empty flask with FlaskCapacity slots.
func NewFlask() *Flask {
	return &Flask{Stack: container.NewStack[Chemical](FlaskCapacity)}
}

// NewFlasks creates n empty flasks.
func NewFlasks(n int) []*Flask {
	flasks := make([]*Flask, n)
	for i := range flasks {
		flasks[i] = NewFlask()
	}
	return flasks
}

// FlaskOf builds a flask holding units, bottom first.
// Returns an error if units exceed FlaskCapacity.
func FlaskOf(units ...Chemical) (*Flask, error) {
	f := NewFlask()
	for _, u := range units {
		if err := f.Push(u); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// IsSealed reports whether the flask's top UnitsPerType units are identical.
func (f *Flask) IsSealed() bool {
	return IsSealed(f)
}

// Clone returns an independent copy of the flask.
func (f *Flask) Clone() *Flask {
	return &Flask{Stack: f.Stack.Clone()}
}

// String returns the units bottom to top separated by spaces.
func (f *Flask) String() string {
	units := f.Items()
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = string(u)
	}
	return strings.Join(parts, " ")
}

// Move is a single pour from Source to Dest, both zero-based.
type Move struct {
	Source int
	Dest   int
}

// String formats the move with the player-visible one-based numbers.
func (m Move) String() string {
	return fmt.Sprintf("%d>%d", m.Source+1, m.Dest+1)
}

// Clone deep-copies a flask vector.
func Clone(flasks []*Flask) []*Flask {
	out := make([]*Flask, len(flasks))
	for i, f := range flasks {
		out[i] = f.Clone()
	}
	return out
}

// TotalUnits counts chemical units across all flasks.
func TotalUnits(flasks []*Flask) int {
	total := 0
	for _, f := range flasks {
		total += f.Size()
	}
	return total
}

// Key returns a string identifying the flask vector up to flask order.
// Two vectors that are permutations of each other share a key.
func Key(flasks []*Flask) string {
	parts := make([]string, len(flasks))
	for i, f := range flasks {
		parts[i] = f.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

// Format returns a plain multi-line listing, one flask per line.
func Format(flasks []*Flask) string {
	var sb strings.Builder
	for i, f := range flasks {
		fmt.Fprintf(&sb, "%2d: [%s]", i+1, f.String())
		if f.IsSealed() {
			sb.WriteString(" sealed")
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
