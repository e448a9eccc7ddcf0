package ports

// TokenService issues and verifies signed session tokens. Tokens are
// stateless: no server-side session table exists.
type TokenService interface {
	// Issue signs a token for userID with a fixed expiry window.
	Issue(userID string) (string, error)

	// Verify returns the embedded user ID for a well-formed, correctly
	// signed, unexpired token and ("", false) for every failure mode.
	Verify(token string) (string, bool)
}
