package model

import "context"

// ContextManager carries the authenticated user ID through a request
// context.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID string) context.Context
	GetUserIDFromContext(ctx context.Context) (string, bool)
}
