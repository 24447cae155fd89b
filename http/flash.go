package http

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const flashCookieName = "topfive_flash"

// flashTTL bounds how long a pending notice stays valid between the
// redirect and the next page load.
const flashTTL = 5 * time.Minute

// Flash is a one-shot notice shown on the next page render.
// Category is one of "success", "error", "info".
type Flash struct {
	Message  string
	Category string
}

type flashClaims struct {
	Message  string `json:"msg"`
	Category string `json:"cat"`
	jwt.RegisteredClaims
}

// flashCodec signs notices into a short-lived cookie so they cannot be
// forged or replayed long after the redirect that set them.
type flashCodec struct {
	secret []byte
}

func newFlashCodec(secret []byte) *flashCodec {
	return &flashCodec{secret: secret}
}

func (c *flashCodec) Set(w http.ResponseWriter, flash Flash) {
	claims := &flashClaims{
		Message:  flash.Message,
		Category: flash.Category,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(flashTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		// Signing an HS256 token only fails on a broken key; drop the
		// notice rather than fail the request.
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(flashTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the pending notice, if any, and clears the cookie so the
// notice renders exactly once. Tampered or expired cookies read as no
// notice.
func (c *flashCodec) Pop(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	claims := &flashClaims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims,
		func(token *jwt.Token) (interface{}, error) {
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil
	}

	return &Flash{Message: claims.Message, Category: claims.Category}
}
