package auth

import "github.com/heartmarshall/inspection-registry/internal/domain"

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
