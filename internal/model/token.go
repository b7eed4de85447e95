package model

// TokenManager generates and validates bearer tokens.
type TokenManager interface {
	Generate(userID string) (string, error)
	Parse(token string) (string, error)
}
