package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadIsMemoized(t *testing.T) {
	t1, err := Load()
	require.NoError(t, err)

	t2, err := Load()
	require.NoError(t, err)

	require.Same(t, t1, t2, "Load must return the same Table instance on every call")
}

func TestLookup(t *testing.T) {
	tbl, err := Load()
	require.NoError(t, err)

	e, ok := tbl.Lookup("amp;")
	require.True(t, ok)
	require.Equal(t, "&", e.Characters)
	require.Equal(t, []rune{'&'}, e.Codepoints)

	_, ok = tbl.Lookup("notarealentity;")
	require.False(t, ok)
}

func TestLongestMatch(t *testing.T) {
	tbl, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		wantN   int
		wantStr string
		wantOK  bool
	}{
		{"exact with semicolon", "amp;rest", 4, "&", true},
		{"legacy no semicolon, longer match wins", "notin;x", 6, "∉", true},
		{"legacy prefix only, no extension matches", "notit;", 3, "¬", true},
		{"no match at all", "zzzzz;", 0, "", false},
		{"multi-codepoint entity", "gesl;y", 5, "⋛︀", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, e, ok := tbl.LongestMatch(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			require.Equal(t, tt.wantN, n)
			require.Equal(t, tt.wantStr, e.Characters)
		})
	}
}

func TestLongestMatchIsMonotonic(t *testing.T) {
	// If "&name;X" matches entity "name", then "&nameY;" either
	// matches a longer entity or falls back to ambiguous-ampersand
	// handling (i.e. never matches a *shorter* entity than the
	// unextended input would).
	tbl, err := Load()
	require.NoError(t, err)

	nBase, _, ok := tbl.LongestMatch("not;")
	require.True(t, ok)

	nExt, _, extOK := tbl.LongestMatch("notin;")
	require.True(t, extOK)
	require.Greater(t, nExt, nBase)
}
