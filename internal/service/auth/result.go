package auth

import "github.com/heartmarshall/mycellar-backend/internal/domain"

// AuthResult is returned by Register, LoginWithPassword and Refresh operations.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
