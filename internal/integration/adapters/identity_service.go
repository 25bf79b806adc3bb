// Package adapters implements external-facing services consumed by the core.
package adapters

import (
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

// LocalUserID is the identity used when no access token is configured, so
// the app remains fully usable offline.
const LocalUserID = "local"

// IdentityService derives the user identity that scopes all stored and
// synced data. Authentication itself is an external collaborator; the client
// only extracts the subject from the access token it was handed. The token
// is parsed without signature verification, which is the server's job.
type IdentityService struct {
	userID string
}

// NewIdentityService resolves the identity from the given access token.
func NewIdentityService(accessToken string) *IdentityService {
	return &IdentityService{userID: resolveUserID(accessToken)}
}

// UserID returns the resolved user identity.
func (s *IdentityService) UserID() string {
	return s.userID
}

func resolveUserID(accessToken string) string {
	if accessToken == "" {
		return LocalUserID
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		slog.Warn("Failed to parse access token, using local identity", "error", err)
		return LocalUserID
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	if userID, ok := claims["user_id"].(string); ok && userID != "" {
		return userID
	}

	slog.Warn("Access token carries no subject, using local identity")
	return LocalUserID
}
