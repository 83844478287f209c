// Package auth implements bearer-token authentication and the right-based
// authorization checks guarding every controller.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/openlogistics-io/referencedata/internal/message"
)

// Principal identifies the caller of a request: either a user or a
// service-level client (a trusted service talking to this service with no
// user attached).
type Principal struct {
	// UserID is the authenticated user, uuid.Nil for service-level tokens.
	UserID uuid.UUID

	// ServiceLevel marks trusted client tokens with no user attached.
	ServiceLevel bool
}

// claimService marks service-level tokens.
const claimService = "service"

// NewUserToken issues a signed token for a user principal.
func NewUserToken(secret string, userID uuid.UUID, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
		"iat": jwt.NewNumericDate(time.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign user token")
	}

	return signed, nil
}

// NewServiceToken issues a signed service-level token for the named client.
func NewServiceToken(secret, clientName string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":        clientName,
		claimService: true,
		"exp":        jwt.NewNumericDate(time.Now().Add(ttl)),
		"iat":        jwt.NewNumericDate(time.Now()),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign service token")
	}

	return signed, nil
}

// ParseToken validates a bearer token and extracts its principal.
func ParseToken(secret, token string) (Principal, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return Principal{}, message.NewUnauthenticatedError(message.KeyTokenInvalid)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, message.NewUnauthenticatedError(message.KeyTokenInvalid)
	}

	if service, _ := claims[claimService].(bool); service {
		return Principal{ServiceLevel: true}, nil
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return Principal{}, message.NewUnauthenticatedError(message.KeyTokenInvalid)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return Principal{}, message.NewUnauthenticatedError(message.KeyTokenInvalid)
	}

	return Principal{UserID: userID}, nil
}
