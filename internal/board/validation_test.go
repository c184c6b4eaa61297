package board

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZain2005/Flask-Filler/internal/container"
)

func chems(labels ...string) []Chemical {
	out := make([]Chemical, len(labels))
	for i, l := range labels {
		out[i] = Chemical(l)
	}
	return out
}

func mustFlask(t *testing.T, labels ...string) *Flask {
	t.Helper()
	f, err := FlaskOf(chems(labels...)...)
	require.NoError(t, err)
	return f
}

func contents(flasks []*Flask) [][]Chemical {
	out := make([][]Chemical, len(flasks))
	for i, f := range flasks {
		out[i] = f.Items()
	}
	return out
}

func TestIsSealed(t *testing.T) {
	tests := []struct {
		name  string
		units []string
		want  bool
	}{
		{"empty", nil, false},
		{"one", []string{"AA"}, false},
		{"two equal", []string{"AA", "AA"}, false},
		{"three equal", []string{"AA", "AA", "AA"}, true},
		{"three mixed bottom", []string{"BB", "AA", "AA"}, false},
		{"three mixed top", []string{"AA", "AA", "BB"}, false},
		{"four with equal top three", []string{"BB", "AA", "AA", "AA"}, true},
		{"four equal", []string{"AA", "AA", "AA", "AA"}, true},
		{"four with odd top", []string{"AA", "AA", "AA", "BB"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFlask(t, tt.units...)
			assert.Equal(t, tt.want, IsSealed(f))
			assert.Equal(t, tt.want, f.IsSealed())
		})
	}
}

func TestAllSealed(t *testing.T) {
	assert.True(t, AllSealed(nil), "zero flasks are vacuously sealed")
	assert.True(t, AllSealed([]*Flask{NewFlask(), NewFlask()}))
	assert.True(t, AllSealed([]*Flask{mustFlask(t, "AA", "AA", "AA"), NewFlask()}))

	assert.False(t, AllSealed([]*Flask{mustFlask(t, "AA", "AA", "AA"), mustFlask(t, "BB")}))
	assert.False(t, AllSealed([]*Flask{mustFlask(t, "BB", "BB")}))
	assert.False(t, AllSealed([]*Flask{mustFlask(t, "AA", "BB", "AA")}))
	assert.False(t, AllSealed([]*Flask{mustFlask(t, "AA", "AA", "AA", "BB")}))
}

func TestPourMovesTopUnit(t *testing.T) {
	flasks := []*Flask{mustFlask(t, "AA", "BB"), mustFlask(t, "CC")}

	require.NoError(t, Pour(flasks, 0, 1))

	want := [][]Chemical{chems("AA"), chems("CC", "BB")}
	if diff := cmp.Diff(want, contents(flasks)); diff != "" {
		t.Fatalf("flasks after pour mismatch (-want +got):\n%s", diff)
	}
}

func TestPourIgnoresColour(t *testing.T) {
	flasks := []*Flask{mustFlask(t, "AA"), mustFlask(t, "BB", "CC")}
	require.NoError(t, Pour(flasks, 0, 1))
	assert.Equal(t, chems("BB", "CC", "AA"), flasks[1].Items())
}

func TestPourRejections(t *testing.T) {
	tests := []struct {
		name     string
		flasks   [][]string
		src, dst int
		want     RejectReason
	}{
		{"same flask", [][]string{{"AA"}, {}}, 0, 0, SameFlask},
		{"source empty", [][]string{{}, {"AA"}}, 0, 1, SourceEmpty},
		{"source sealed", [][]string{{"AA", "AA", "AA"}, {}}, 0, 1, SourceSealed},
		{"destination full", [][]string{{"AA"}, {"BB", "CC", "BB", "CC"}}, 0, 1, DestinationFull},
		{"destination sealed", [][]string{{"BB"}, {"AA", "AA", "AA"}}, 0, 1, DestinationSealed},
		{"empty into sealed", [][]string{{"AA", "AA", "AA"}, {}}, 1, 0, SourceEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flasks := make([]*Flask, len(tt.flasks))
			for i, units := range tt.flasks {
				flasks[i] = mustFlask(t, units...)
			}
			before := contents(flasks)

			err := Pour(flasks, tt.src, tt.dst)

			var rej *PourRejection
			require.True(t, errors.As(err, &rej), "expected *PourRejection, got %v", err)
			assert.ErrorIs(t, err, ErrPourRejected)
			assert.Equal(t, tt.want, rej.Reason)
			assert.NotEmpty(t, rej.Error())
			if diff := cmp.Diff(before, contents(flasks)); diff != "" {
				t.Fatalf("rejected pour mutated flasks (-before +after):\n%s", diff)
			}
		})
	}
}

func TestPourSameFlaskMessage(t *testing.T) {
	flasks := []*Flask{mustFlask(t, "AA")}
	err := Pour(flasks, 0, 0)
	assert.EqualError(t, err, "Source and destination flasks can't be the same.")
}

func TestPourInvalidIndex(t *testing.T) {
	flasks := []*Flask{mustFlask(t, "AA"), NewFlask()}

	err := Pour(flasks, 0, 2)
	require.ErrorIs(t, err, ErrInvalidFlask)
	assert.NotErrorIs(t, err, ErrPourRejected)

	err = CanPour(flasks, -1, 0)
	require.ErrorIs(t, err, ErrInvalidFlask)
}

func TestTransferRestoresSourceOnFailure(t *testing.T) {
	source := mustFlask(t, "AA", "BB")
	dest := &Flask{Stack: container.NewStack[Chemical](0)}

	err := transfer(source, dest)
	require.ErrorIs(t, err, ErrInconsistentState)
	assert.ErrorIs(t, err, container.ErrCapacityExceeded)
	assert.Equal(t, chems("AA", "BB"), source.Items())
	assert.True(t, dest.IsEmpty())

	err = transfer(NewFlask(), dest)
	require.ErrorIs(t, err, ErrInconsistentState)
	assert.ErrorIs(t, err, container.ErrEmptyContainer)
}

func TestRandomPoursPreserveUnits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	flasks := []*Flask{
		mustFlask(t, "AA", "BB", "CC", "AA"),
		mustFlask(t, "BB", "CC", "AA", "BB"),
		mustFlask(t, "CC"),
		NewFlask(),
		NewFlask(),
	}
	total := TotalUnits(flasks)

	for i := 0; i < 500; i++ {
		src, dst := rng.Intn(len(flasks)), rng.Intn(len(flasks))
		err := Pour(flasks, src, dst)
		if err != nil {
			require.ErrorIs(t, err, ErrPourRejected)
		}
		require.Equal(t, total, TotalUnits(flasks))
		for i, f := range flasks {
			require.LessOrEqual(t, f.Size(), FlaskCapacity, "flask %d", i)
		}
	}
}

func TestLegalMoves(t *testing.T) {
	flasks := []*Flask{
		mustFlask(t, "AA", "AA", "AA"),
		mustFlask(t, "BB"),
		NewFlask(),
	}
	got := LegalMoves(flasks)
	assert.Equal(t, []Move{{Source: 1, Dest: 2}}, got)
}
