package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TokenUtil generates opaque session tokens and signs them for cookie
// transport. The signature lets the middleware reject forged cookies before
// touching the session store; the token itself carries no claims.
type TokenUtil struct {
	secret string
}

// NewTokenUtil creates a new TokenUtil
func NewTokenUtil(secret string) *TokenUtil {
	return &TokenUtil{secret: secret}
}

// NewSessionToken returns a fresh opaque session token
func (tu *TokenUtil) NewSessionToken() string {
	return uuid.NewString()
}

// Sign returns the cookie value for a token: "<token>.<hmac-sha256>"
func (tu *TokenUtil) Sign(token string) string {
	return token + "." + tu.signature(token)
}

// Verify checks a cookie value's signature and returns the embedded token.
func (tu *TokenUtil) Verify(cookieValue string) (string, error) {
	token, sig, found := strings.Cut(cookieValue, ".")
	if !found || token == "" {
		return "", fmt.Errorf("malformed session cookie")
	}
	if !hmac.Equal([]byte(sig), []byte(tu.signature(token))) {
		return "", fmt.Errorf("session cookie signature mismatch")
	}
	return token, nil
}

func (tu *TokenUtil) signature(token string) string {
	mac := hmac.New(sha256.New, []byte(tu.secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
