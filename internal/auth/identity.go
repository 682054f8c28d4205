// Package auth resolves the calling identity from tokens issued by the
// external identity provider. No tokens are minted here; the service trusts
// the provider's signature and the roles carried in the claims.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RoleUser marks an ordinary authenticated marketplace user.
	RoleUser = "user"
	// RoleAdmin marks an administrator.
	RoleAdmin = "admin"
)

// Identity is the resolved caller: the provider-issued account id and the
// role set. A nil Identity means the caller is anonymous.
type Identity struct {
	UserID uuid.UUID
	Roles  map[string]bool
}

// IsUser reports whether the caller holds the user role.
func (i *Identity) IsUser() bool {
	return i != nil && i.Roles[RoleUser]
}

// IsAdmin reports whether the caller holds the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Roles[RoleAdmin]
}

// FromContext extracts the caller identity placed in the echo context by the
// JWT middleware. Returns nil for anonymous callers.
func FromContext(c echo.Context) *Identity {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return FromClaims(claims)
}

// FromClaims builds an identity from raw token claims. The subject must be
// the provider account uuid; roles live under realm_access.roles.
func FromClaims(claims jwt.MapClaims) *Identity {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil
	}

	roles := map[string]bool{}
	if realmAccess, ok := claims["realm_access"].(map[string]interface{}); ok {
		if rawRoles, ok := realmAccess["roles"].([]interface{}); ok {
			for _, r := range rawRoles {
				if name, ok := r.(string); ok {
					roles[name] = true
				}
			}
		}
	}

	return &Identity{UserID: userID, Roles: roles}
}
