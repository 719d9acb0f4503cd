package quickfind

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequestTokenExample(t *testing.T) {
	clientID, err := DecodeRequestToken("qf_1700000000_client_42")
	require.NoError(t, err)
	assert.Equal(t, "client_42", clientID)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ids := []string{
		"alice",
		"client_42",
		"a_b_c_d",
		"550e8400-e29b-41d4-a716-446655440000",
		"_leading",
	}
	for _, id := range ids {
		token := EncodeRequestToken(id)
		assert.True(t, strings.HasPrefix(token, "qf_"), "token %q", token)

		decoded, err := DecodeRequestToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestDecodeRequestTokenRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"too few fields":        "qf_1700000000",
		"unknown marker":        "xx_1700000000_client",
		"non-numeric timestamp": "qf_soon_client",
		"empty client id":       "qf_1700000000_",
		"empty token":           "",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeRequestToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
