package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderPopupCentresOverBase(t *testing.T) {
	t.Parallel()

	base := strings.Repeat(strings.Repeat(".", 20)+"\n", 5)
	out := renderPopup(base, "XX", 20, 5)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	require.Equal(t, strings.Repeat(".", 9)+"XX"+strings.Repeat(".", 9), lines[2])
	require.Equal(t, strings.Repeat(".", 20), lines[0])
}

func TestRenderPopupWithoutSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "base\n\npopup", renderPopup("base", "popup", 0, 0))
}
