package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cookbook/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string   `json:"username"`
	UserID   string   `json:"userId"`
	Role     []string `json:"role"`
	jwt.RegisteredClaims
}

// OptionalAuth puts the token's user ID in the request context when a valid
// bearer token is present. Requests without one proceed anonymously.
func OptionalAuth(secret []byte) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			if len(secret) > 0 {
				if claims, err := ValidateJWT(r.Header.Get("Authorization"), secret); err == nil && claims.UserID != "" {
					r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, claims.UserID))
				}
			}
			next(w, r, ps)
		}
	}
}

// ValidateJWT parses an "Authorization: Bearer <token>" header value.
func ValidateJWT(header string, secret []byte) (*Claims, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("unauthorized: invalid token")
	}
	return claims, nil
}
