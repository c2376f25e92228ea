package auth

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const clientIDKey contextKey = "clientID"

const (
	CookieName  = "client_token"
	tokenMaxAge = 365 * 24 * time.Hour
)

// Authenv issues and checks the anonymous client cookie. There are no
// accounts: the cookie only ties a browser to its stored preferences.
type Authenv struct {
	JWTkey []byte
	Secure bool
	Now    func() time.Time
}

func (env *Authenv) now() time.Time {
	if env.Now != nil {
		return env.Now()
	}
	return time.Now()
}

type clientClaims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

func (env *Authenv) issueToken(clientID string) (string, error) {
	now := env.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, clientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenMaxAge)),
		},
	})
	return token.SignedString(env.JWTkey)
}

// ParseToken returns the client id of a valid cookie value.
func (env *Authenv) ParseToken(tokenString string) (string, error) {
	var claims clientClaims
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return env.JWTkey, nil
	}
	token, err := jwt.ParseWithClaims(tokenString, &claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(env.now),
	)
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.ClientID == "" {
		return "", errors.New("token carries no client id")
	}
	return claims.ClientID, nil
}

func (env *Authenv) addCookie(w http.ResponseWriter, clientID string) error {
	tokenString, err := env.issueToken(clientID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tokenString,
		Expires:  env.now().Add(tokenMaxAge),
		Path:     "/",
		HttpOnly: true,
		Secure:   env.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClientMiddleware puts the client id from the cookie into the request
// context, issuing a new id when the cookie is missing or invalid.
func (env *Authenv) ClientMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var clientID string
		if cookie, err := r.Cookie(CookieName); err == nil {
			id, err := env.ParseToken(cookie.Value)
			if err != nil {
				log.Printf("Rejected client token: %v", err)
			}
			clientID = id
		}
		if clientID == "" {
			clientID = uuid.NewString()
			if err := env.addCookie(w, clientID); err != nil {
				log.Printf("Client token error: %v", err)
				http.Error(w, "Session error", http.StatusInternalServerError)
				return
			}
		}

		ctx := context.WithValue(r.Context(), clientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func ClientID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey).(string)
	return id, ok && id != ""
}

// WithClientID is used by handlers' tests to skip the cookie round trip.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
