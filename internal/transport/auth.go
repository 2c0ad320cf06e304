package transport

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AuthMiddleware enforces bearer token authentication against a single
// configured token.
func AuthMiddleware(token string) func(http.Handler) http.Handler {
	want := hashToken(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := checkBearer(r, want); err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="pranikov"`)
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func checkBearer(r *http.Request, want []byte) error {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return errors.New("missing bearer token")
	}
	got := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if got == "" {
		return errors.New("missing bearer token")
	}
	if subtle.ConstantTimeCompare(hashToken(got), want) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// Comparing digests keeps the comparison length-independent.
func hashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}
