package middleware

import (
	"net/http"

	"quick_heal/model"
)

func AdminMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if user.Roles == model.RoleAdmin {
			handler.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	})
}

func UserMiddleware(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if user.Roles == model.RoleUser {
			handler.ServeHTTP(w, r)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	})
}
