package domain

// AuthClaims is the identity decoded from the bearer token. The token itself
// stays opaque; the client never verifies the signature, the judge does.
type AuthClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
