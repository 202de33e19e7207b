package ports

// TokenService issues and verifies the signed identity assertion that backs
// every protected request. Tokens are stateless: nothing is persisted server
// side and there is no revocation.
type TokenService interface {
	// Issue mints a signed token bound to userID with a fixed expiry.
	Issue(userID string) (string, error)
	// Verify checks signature and expiry and returns the bound user id.
	// Any failure collapses to domain.ErrInvalidToken.
	Verify(token string) (string, error)
}
