package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inventory-console/internal/model"
)

// The identity backend emits WS-* schema URIs for the name and role claims;
// the short keys cover tokens from plainer issuers.
const (
	roleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	nameClaimURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
)

// ErrInvalidToken marks a token that cannot be decoded into usable claims.
// Callers treat it as "no valid session", never as a user-facing error.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded payload of a bearer token.
type Claims struct {
	Subject   string
	Username  string
	Roles     model.RoleSet
	ExpiresAt int64 // unix seconds
	Issuer    string
	Audience  string
}

// Decode parses a bearer token without verifying its signature. Signature
// validation is the server's job; the client only needs the payload, and it
// holds no key material to check it with.
func Decode(tokenString string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims shape", ErrInvalidToken)
	}

	claims := &Claims{Roles: model.NewRoleSet()}

	claims.Subject = stringClaim(claimsMap, "sub")
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	exp, ok := numericClaim(claimsMap["exp"])
	if !ok {
		return nil, fmt.Errorf("%w: missing expiry", ErrInvalidToken)
	}
	claims.ExpiresAt = exp

	claims.Username = stringClaim(claimsMap, "username", "unique_name", nameClaimURI)
	claims.Issuer = stringClaim(claimsMap, "iss")
	claims.Audience = audienceClaim(claimsMap["aud"])

	// The role claim arrives either as a single string or as a collection.
	for _, key := range []string{"role", "roles", roleClaimURI} {
		collectRoles(claims.Roles, claimsMap[key])
	}

	return claims, nil
}

// IsExpired reports whether the claims are no longer valid at the given
// instant. A token expiring exactly now counts as expired.
func IsExpired(c *Claims, now time.Time) bool {
	return c.ExpiresAt <= now.Unix()
}

// Identity projects the claims into the application's identity shape.
func (c *Claims) Identity() *model.Identity {
	return &model.Identity{
		ID:       c.Subject,
		Username: c.Username,
		Roles:    c.Roles,
	}
}

func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func audienceClaim(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func numericClaim(raw any) (int64, bool) {
	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case int64:
		return v, true
	}
	return 0, false
}

func collectRoles(set model.RoleSet, raw any) {
	switch v := raw.(type) {
	case string:
		set.Add(v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				set.Add(s)
			}
		}
	}
}
