package infra

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	api "github.com/s21platform/board-service/internal/generated"
)

const AdminPathPrefix = "/live/admin/"

// AdminAuthHTTP guards every route under AdminPathPrefix with the shared
// admin key carried in header. Other routes pass through untouched.
func AdminAuthHTTP(next http.Handler, header, key string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, AdminPathPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		presented := r.Header.Get(header)
		if key == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.Error{Error: "unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
