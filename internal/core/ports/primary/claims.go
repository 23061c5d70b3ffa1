package primary

import (
	"context"

	"gitlab.com/fcv-2025.net/client/internal/domain"
)

// ClaimDecoder extracts identity claims from a bearer token without verifying
// it. Verification is the judge's job; the client only needs the display
// identity and role carried in the payload segment.
type ClaimDecoder interface {
	DecodeTokenPayload(ctx context.Context, token string) (domain.AuthClaims, error)
}
