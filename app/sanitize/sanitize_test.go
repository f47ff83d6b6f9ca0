package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestTextEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n "} {
		out, ok := Text(in)
		require.False(t, ok, "input %q should yield no value", in)
		require.Empty(t, out)
	}
}

func TestTextTrims(t *testing.T) {
	out, ok := Text("  hello world  ")
	require.True(t, ok)
	require.Equal(t, "hello world", out)
}

func TestTextCapsLength(t *testing.T) {
	out, ok := Text(" a" + strings.Repeat("b", 600))
	require.True(t, ok)
	require.Len(t, out, MaxLen)
	require.Equal(t, "a", out[:1], "leading whitespace is trimmed before capping")
}

func TestTextCountsCharactersNotBytes(t *testing.T) {
	// 300 two-byte characters: 600 bytes but well under the cap
	in := strings.Repeat("é", 300)
	out, ok := Text(in)
	require.True(t, ok)
	require.Equal(t, in, out)
}

func TestTextCapNeverSplitsRune(t *testing.T) {
	out, ok := Text(strings.Repeat("日", 600))
	require.True(t, ok)
	require.Equal(t, MaxLen, utf8.RuneCountInString(out))
	require.True(t, utf8.ValidString(out))
	require.Equal(t, strings.Repeat("日", MaxLen), out)
}
