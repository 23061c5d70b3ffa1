package crypto

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// token builds an unsigned-looking JWT around the given payload JSON. The
// decoder never verifies signatures, so the other segments can be anything.
func token(payloadJSON string) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(payloadJSON))
	return header + "." + payload + ".signature"
}

func TestDecodeTokenPayloadClaimURIs(t *testing.T) {
	tok := token(`{
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name": "alice",
		"http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress": "alice@fpt.edu.vn",
		"http://schemas.microsoft.com/ws/2008/06/identity/claims/role": "student",
		"exp": 1893456000
	}`)

	claims, err := NewClaimDecoder().DecodeTokenPayload(context.Background(), tok)

	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "alice@fpt.edu.vn", claims.Email)
	assert.Equal(t, "student", claims.Role)
}

func TestDecodeTokenPayloadPlainKeys(t *testing.T) {
	tok := token(`{"name":"bob","email":"bob@fpt.edu.vn","role":"lecturer"}`)

	claims, err := NewClaimDecoder().DecodeTokenPayload(context.Background(), tok)

	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Name)
	assert.Equal(t, "bob@fpt.edu.vn", claims.Email)
	assert.Equal(t, "lecturer", claims.Role)
}

func TestDecodeTokenPayloadRoleArray(t *testing.T) {
	tok := token(`{"http://schemas.microsoft.com/ws/2008/06/identity/claims/role":["student","member"]}`)

	claims, err := NewClaimDecoder().DecodeTokenPayload(context.Background(), tok)

	require.NoError(t, err)
	assert.Equal(t, "student", claims.Role)
}

func TestDecodeTokenPayloadMissingClaims(t *testing.T) {
	claims, err := NewClaimDecoder().DecodeTokenPayload(context.Background(), token(`{}`))

	require.NoError(t, err)
	assert.Empty(t, claims.Name)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestDecodeTokenPayloadMalformed(t *testing.T) {
	decoder := NewClaimDecoder()

	tests := []struct {
		name  string
		token string
	}{
		{"not a token", "plainstring"},
		{"two segments", "aaa.bbb"},
		{"payload not base64", "aaa.!!!.ccc"},
		{"payload not json", token("not json at all")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.DecodeTokenPayload(context.Background(), tt.token)
			require.Error(t, err)
		})
	}
}
