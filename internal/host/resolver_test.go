package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	names := Names{A: "Jorge Luis", B: "Yuliana"}

	t.Run("exact match is case-insensitive", func(t *testing.T) {
		ref, ok := Resolve("jorge luis", names)
		require.True(t, ok)
		assert.Equal(t, RefA, ref)

		ref, ok = Resolve("YULIANA", names)
		require.True(t, ok)
		assert.Equal(t, RefB, ref)
	})

	t.Run("literal canonical spellings", func(t *testing.T) {
		for _, input := range []string{"hosta", "Host A", "HOST_A"} {
			ref, ok := Resolve(input, names)
			require.True(t, ok, "input %q", input)
			assert.Equal(t, RefA, ref)
		}

		ref, ok := Resolve("host b", names)
		require.True(t, ok)
		assert.Equal(t, RefB, ref)
	})

	t.Run("input prefix of name", func(t *testing.T) {
		ref, ok := Resolve("Jorge", names)
		require.True(t, ok)
		assert.Equal(t, RefA, ref)
	})

	t.Run("name prefix of input", func(t *testing.T) {
		// Typo with trailing garbage still matches via containment
		ref, ok := Resolve("Yulianaa", names)
		require.True(t, ok)
		assert.Equal(t, RefB, ref)
	})

	t.Run("short nickname matches via prefix", func(t *testing.T) {
		ref, ok := Resolve("Yul", names)
		require.True(t, ok)
		assert.Equal(t, RefB, ref)
	})

	t.Run("fuzzy match above threshold", func(t *testing.T) {
		// "jorge lui" shares 9 leading chars of "jorge luis" (10): 0.9
		ref, ok := Resolve("Jorge Lui3", names)
		require.True(t, ok)
		assert.Equal(t, RefA, ref)
	})

	t.Run("exact beats fuzzy", func(t *testing.T) {
		tight := Names{A: "Sam", B: "Pam"}
		ref, ok := Resolve("Sam", tight)
		require.True(t, ok)
		assert.Equal(t, RefA, ref)
	})

	t.Run("fuzzy tie is rejected", func(t *testing.T) {
		// Zero common prefix with either host: both score 0
		_, ok := Resolve("Tam", Names{A: "Sam", B: "Pam"})
		assert.False(t, ok)
	})

	t.Run("equal high similarity is rejected", func(t *testing.T) {
		// Both hosts identical: scores tie at 1.0, must not pick either
		_, ok := Resolve("Alexa", Names{A: "Alexi", B: "Alexi"})
		assert.False(t, ok)
	})

	t.Run("below threshold is rejected", func(t *testing.T) {
		_, ok := Resolve("xyz", names)
		assert.False(t, ok)
	})

	t.Run("short unknown input is rejected", func(t *testing.T) {
		// Length < 3 never reaches the fuzzy fallback
		_, ok := Resolve("zz", names)
		assert.False(t, ok)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		_, ok := Resolve("   ", names)
		assert.False(t, ok)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, okFirst := Resolve("Jorge Lu", names)
		for i := 0; i < 10; i++ {
			ref, ok := Resolve("Jorge Lu", names)
			assert.Equal(t, okFirst, ok)
			assert.Equal(t, first, ref)
		}
	})
}

func TestResolve_ImportScenario(t *testing.T) {
	// "alexx" begins with all of "alex": containment match, fuzzy not needed
	ref, ok := Resolve("alexx", Names{A: "Alex", B: "Jamie"})
	require.True(t, ok)
	assert.Equal(t, RefA, ref)
}

func TestNormalize(t *testing.T) {
	names := Names{A: "Alex", B: "Jamie"}

	t.Run("resolves dedups and drops", func(t *testing.T) {
		refs, dropped := Normalize([]string{"alex", "Alexx", "nobody", "jamie"}, names)
		assert.Equal(t, []Ref{RefA, RefB}, refs)
		assert.Equal(t, []string{"nobody"}, dropped)
	})

	t.Run("canonical refs pass through", func(t *testing.T) {
		refs, dropped := Normalize([]string{"host_b", "host_a"}, names)
		assert.Equal(t, []Ref{RefB, RefA}, refs)
		assert.Empty(t, dropped)
	})

	t.Run("idempotent over its own output", func(t *testing.T) {
		refs, _ := Normalize([]string{"alex", "jam", "alex"}, names)

		raw := make([]string, len(refs))
		for i, r := range refs {
			raw[i] = string(r)
		}

		again, dropped := Normalize(raw, names)
		assert.Equal(t, refs, again)
		assert.Empty(t, dropped)
	})

	t.Run("empty input yields empty set", func(t *testing.T) {
		refs, dropped := Normalize(nil, names)
		assert.Empty(t, refs)
		assert.Empty(t, dropped)
	})
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"alex", "alex", 1.0},
		{"alexx", "alex", 0.8},
		{"tam", "sam", 0.0},
		{"", "alex", 0.0},
		{"jmaie", "jamie", 0.2}, // transpositions score poorly, documented behavior
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, similarity(tt.a, tt.b), 1e-9, "similarity(%q,%q)", tt.a, tt.b)
	}
}
