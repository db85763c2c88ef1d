package secure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const devKey = "ae-scholarships-dev-key-32bytes!"

func TestSINCipher_RoundTrip(t *testing.T) {
	c, err := NewSINCipher(devKey)
	require.NoError(t, err)

	stored, err := c.Encrypt("046454286")
	require.NoError(t, err)

	ivHex, dataHex, ok := strings.Cut(stored, ":")
	require.True(t, ok)
	assert.Len(t, ivHex, 32)
	assert.Len(t, dataHex, 32)

	plain, err := c.Decrypt(stored)
	require.NoError(t, err)
	assert.Equal(t, "046454286", plain)

	again, err := c.Encrypt("046454286")
	require.NoError(t, err)
	assert.NotEqual(t, stored, again, "random iv per encryption")
}

func TestSINCipher_Mask(t *testing.T) {
	c, err := NewSINCipher(devKey + "extra bytes are ignored")
	require.NoError(t, err)

	stored, err := c.Encrypt("046454286")
	require.NoError(t, err)

	assert.Equal(t, "***-***-286", c.Mask(stored))
	assert.Equal(t, "***-***-***", c.Mask("garbage"))
	assert.Equal(t, "", c.Mask(""))
}

func TestSINCipher_Errors(t *testing.T) {
	_, err := NewSINCipher("short")
	assert.Error(t, err)

	c, err := NewSINCipher(devKey)
	require.NoError(t, err)

	for _, bad := range []string{"nocolon", "zz:00", "00112233445566778899aabbccddeeff:abc"} {
		_, err := c.Decrypt(bad)
		assert.ErrorIs(t, err, ErrMalformedCiphertext, bad)
	}

	other, err := NewSINCipher("another-key-that-is-32-bytes-lon")
	require.NoError(t, err)
	stored, err := c.Encrypt("046454286")
	require.NoError(t, err)
	plain, err := other.Decrypt(stored)
	if err == nil {
		assert.NotEqual(t, "046454286", plain)
	}
}
