// internal/app/system/listquery/listquery.go

// Package listquery parses the list-endpoint query surface: an optional
// numeric limit plus the exact-match filter parameters each entity declares.
package listquery

import (
	"fmt"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// Kind is the value type a filter parameter is parsed as.
type Kind int

const (
	String Kind = iota
	Bool
	Int
)

// Param declares one allowed filter parameter for a list endpoint and the
// document field it matches against.
type Param struct {
	Name  string // query parameter name, e.g. "isRead"
	Field string // bson field name, e.g. "is_read"
	Kind  Kind
}

// Limit reads the "limit" parameter, falling back to def when absent or not
// a positive integer.
func Limit(r *http.Request, def int64) int64 {
	s := r.URL.Query().Get("limit")
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Filter builds an exact-match filter from the declared parameters that are
// present on the request. Absent parameters are skipped; a value that fails
// to parse for its declared kind is an error.
func Filter(r *http.Request, params []Param) (bson.M, error) {
	q := r.URL.Query()
	filter := bson.M{}
	for _, p := range params {
		raw := q.Get(p.Name)
		if raw == "" {
			continue
		}
		switch p.Kind {
		case Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			filter[p.Field] = b
		case Int:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
			}
			filter[p.Field] = n
		default:
			filter[p.Field] = raw
		}
	}
	return filter, nil
}
