package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashFormat(t *testing.T) {
	h, err := Hash("secret1")
	require.NoError(t, err)
	require.Len(t, h, saltLen+digestLen)
	for _, c := range h {
		require.Contains(t, "0123456789abcdef", string(c))
	}
}

func TestHashSaltsDiffer(t *testing.T) {
	h1, err := Hash("secret1")
	require.NoError(t, err)
	h2, err := Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "each hash should use a fresh salt")
	require.True(t, Verify("secret1", h1))
	require.True(t, Verify("secret1", h2))
}

func TestVerify(t *testing.T) {
	h, err := Hash("correct horse")
	require.NoError(t, err)

	require.True(t, Verify("correct horse", h))
	require.False(t, Verify("wrong horse", h))
	require.False(t, Verify("", h))
}

func TestVerifyMalformedHash(t *testing.T) {
	require.False(t, Verify("anything", ""))
	require.False(t, Verify("anything", "tooshort"))
}
