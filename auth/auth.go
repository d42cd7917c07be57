// Package auth maps presented bearer credentials to identities.
//
// The server core never reads token state from the environment; it is
// handed a Verifier and treats it as a capability. Two implementations
// ship: a static shared-token verifier and an HS256 JWT verifier.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUnauthorized indicates the presented credential is not valid.
var ErrUnauthorized = errors.New("unauthorized")

// Identity describes an authenticated caller.
type Identity struct {
	ClientID string
	Scopes   []string
}

// Verifier maps a presented credential to an authorized identity.
type Verifier interface {
	Verify(ctx context.Context, credential string) (Identity, error)
}

// StaticVerifier accepts exactly one pre-shared token.
type StaticVerifier struct {
	token    string
	clientID string
}

// NewStaticVerifier creates a verifier for the given token. The clientID
// is attached to every identity it issues.
func NewStaticVerifier(token, clientID string) *StaticVerifier {
	return &StaticVerifier{token: token, clientID: clientID}
}

// Verify compares the credential against the configured token in constant
// time.
func (v *StaticVerifier) Verify(_ context.Context, credential string) (Identity, error) {
	if v.token == "" {
		return Identity{}, fmt.Errorf("%w: no token configured", ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(credential), []byte(v.token)) != 1 {
		return Identity{}, ErrUnauthorized
	}
	return Identity{ClientID: v.clientID, Scopes: []string{"*"}}, nil
}

// JWTVerifier accepts HS256-signed JSON Web Tokens.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for tokens signed with the given
// secret.
func NewJWTVerifier(secret []byte) *JWTVerifier {
	return &JWTVerifier{secret: secret}
}

// Verify parses and validates the token. The token subject becomes the
// identity's client ID.
func (v *JWTVerifier) Verify(_ context.Context, credential string) (Identity, error) {
	token, err := jwt.Parse(credential, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}
	return Identity{ClientID: subject, Scopes: []string{"*"}}, nil
}
