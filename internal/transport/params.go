package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// queryInt reads an integer query parameter. Absent or non-numeric values
// yield def. Numbers outside int saturate to the nearest bound; range
// checks are left to the caller.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	if err != nil {
		return def
	}
	return n
}

// queryUUID reads an optional UUID query parameter. ok is false only when a
// value is present but malformed.
func queryUUID(r *http.Request, key string) (id *uuid.UUID, ok bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func passthrough(next http.Handler) http.Handler { return next }
