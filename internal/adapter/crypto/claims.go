package crypto

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/fcv-2025.net/client/internal/core/ports/primary"
	"gitlab.com/fcv-2025.net/client/internal/domain"
)

var _ primary.ClaimDecoder = (*ClaimDecoderImpl)(nil)

var ErrInvalidToken = fmt.Errorf("invalid token")

// Claim URIs the judge's token issuer uses for identity claims. Plain claim
// names are accepted as a fallback.
const (
	claimNameURI  = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	claimEmailURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress"
	claimRoleURI  = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
)

type ClaimDecoderImpl struct{}

func NewClaimDecoder() primary.ClaimDecoder {
	return &ClaimDecoderImpl{}
}

// DecodeTokenPayload decodes the payload segment of the token without
// verifying the signature and maps the issuer's claim URIs onto AuthClaims.
func (ClaimDecoderImpl) DecodeTokenPayload(ctx context.Context, token string) (domain.AuthClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return domain.AuthClaims{}, ErrInvalidToken
	}

	payloadData, err := decodeSeg(parts[1])
	if err != nil {
		return domain.AuthClaims{}, fmt.Errorf("failed to decode token payload: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(payloadData), &raw); err != nil {
		return domain.AuthClaims{}, fmt.Errorf("failed to parse token claims: %w", err)
	}

	return domain.AuthClaims{
		Name:  claimString(raw, claimNameURI, "name"),
		Email: claimString(raw, claimEmailURI, "email"),
		Role:  claimString(raw, claimRoleURI, "role"),
	}, nil
}

// claimString returns the first present string value among the given keys. A
// role claim carrying multiple values is collapsed to its first entry.
func claimString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		switch v := raw[key].(type) {
		case string:
			return v
		case []interface{}:
			if len(v) > 0 {
				if s, ok := v[0].(string); ok {
					return s
				}
			}
		}
	}
	return ""
}

func decodeSeg(segment string) (string, error) {
	seg, err := jwt.NewParser().DecodeSegment(segment)
	if err != nil {
		return "", err
	}
	return string(seg), nil
}
