package demo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchOption(t *testing.T) {
	t.Parallel()

	cases := []struct {
		query string
		want  string
		ok    bool
	}{
		{"lo", "LOONA", true},
		{"NEW", "NJS", true},
		{"njs", "NJS", true},
		{"twcie", "TWICE", true},
		{"newjens", "NJS", true},
		{"", "", false},
		{"zzzzzz", "", false},
	}
	for _, tc := range cases {
		got, ok := MatchOption(tc.query)
		require.Equal(t, tc.ok, ok, "query %q", tc.query)
		require.Equal(t, tc.want, got.Value, "query %q", tc.query)
	}
}

func TestOptionIndex(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, OptionIndex("LOONA"))
	require.Equal(t, 2, OptionIndex("TWICE"))
	require.Equal(t, -1, OptionIndex("java"))
}
