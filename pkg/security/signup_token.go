package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrBadToken     = errors.New("signup token is malformed or has a bad signature")
	ErrTokenExpired = errors.New("signup token expired")
)

// SignEmail produces a URL-safe signup token carrying the email and the
// moment of signing: base64(email).timestamp.signature. Whoever presents the
// token later proves they received the mail sent to that address.
func SignEmail(email, secret string) string {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	payload := base64.RawURLEncoding.EncodeToString([]byte(email)) + "." + ts

	return payload + "." + sign(payload, secret)
}

// UnsignEmail validates a token produced by SignEmail and returns the email
// baked into it. Tokens older than maxAge return ErrTokenExpired.
func UnsignEmail(token, secret string, maxAge time.Duration) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrBadToken
	}

	payload := parts[0] + "." + parts[1]
	if !hmac.Equal([]byte(sign(payload, secret)), []byte(parts[2])) {
		return "", ErrBadToken
	}

	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrBadToken
	}

	if time.Since(time.Unix(ts, 0)) > maxAge {
		return "", ErrTokenExpired
	}

	email, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrBadToken
	}

	return string(email), nil
}

func sign(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(fmt.Sprintf("signup-token:%s", secret)))
	mac.Write([]byte(payload))

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
