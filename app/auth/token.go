package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an admin token stays valid unless the caller
// asks for something else.
const DefaultTokenTTL = 12 * time.Hour

// AdminRole is the only role this service issues.
const AdminRole = "admin"

// Claims is the signed payload of an admin token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verification is the tagged result of checking a token. Exactly one of
// Valid or Reason is meaningful: an invalid token carries a human-readable
// reason and nothing else.
type Verification struct {
	Valid     bool
	Subject   string
	Role      string
	ExpiresAt time.Time
	Reason    string
}

// IssueToken signs an HS256 token for the given email. The subject is the
// lower-cased, trimmed email and the role is always "admin". An empty secret
// still signs; deployments without JWT_SECRET are warned at startup and must
// be treated as non-production.
func IssueToken(email, secret string, validity time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strings.ToLower(strings.TrimSpace(email)),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken checks signature, expiry and role. All failures come back as a
// tagged Verification; nothing panics or leaks parser errors past this
// boundary. A role mismatch reports "Forbidden", everything else reports the
// decode/signature/expiry cause.
func VerifyToken(tokenString, secret, requiredRole string) Verification {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Verification{Reason: err.Error()}
	}
	if !token.Valid {
		return Verification{Reason: "invalid token"}
	}
	if requiredRole != "" && claims.Role != requiredRole {
		return Verification{Reason: "Forbidden"}
	}

	v := Verification{Valid: true, Subject: claims.Subject, Role: claims.Role}
	if claims.ExpiresAt != nil {
		v.ExpiresAt = claims.ExpiresAt.Time
	}
	return v
}
