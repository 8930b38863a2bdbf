package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"

	"quick_heal/model"
)

type ContextKeys string

const (
	UserContext ContextKeys = "userInfo"
)

// Auth parses the bearer token issued by the identity provider and puts the
// caller's credential in the request context. The token subject is trusted
// as an opaque user id.
func Auth(secret []byte) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			checkToken, err := jwt.Parse(userToken, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !checkToken.Valid {
				logrus.WithError(err).Info("Auth: rejected token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, ok := checkToken.Claims.(jwt.MapClaims)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			credential, ok := claims["credential"].(map[string]interface{})
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user := model.UserCredential{}
			user.Id, _ = credential["id"].(string)
			user.Email, _ = credential["email"].(string)
			if role, ok := credential["role"].(string); ok {
				user.Roles = model.Role(role)
			}
			if user.Id == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserContext, user)
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GenerateJWT mints a token in the provider's shape; used by tooling and
// tests.
func GenerateJWT(userID, email string, role model.Role, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"authorized": true,
		"credential": map[string]interface{}{
			"id":    userID,
			"email": email,
			"role":  string(role),
		},
		"exp": time.Now().Add(30 * time.Minute).Unix(),
	})
	return token.SignedString(secret)
}

// UserFromContext returns the credential Auth stored for this request.
func UserFromContext(r *http.Request) (model.UserCredential, bool) {
	user, ok := r.Context().Value(UserContext).(model.UserCredential)
	return user, ok
}
