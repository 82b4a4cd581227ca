package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aussiebroadwan/shepherd/pkg/httpx"
)

// readPatch reads a JSON object body for a partial update. probe receives a
// trial decode so type errors surface before the service is called.
func readPatch(r *http.Request, probe any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := httpx.DecodeJSON(r, &raw); err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("request body must be a JSON object")
	}
	if err := json.Unmarshal(raw, probe); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return raw, nil
}

// mergePatch overlays raw onto dst. Fields absent from raw keep their value.
func mergePatch[T any](dst *T, raw json.RawMessage) {
	// raw was already decoded successfully by readPatch.
	_ = json.Unmarshal(raw, dst)
}

// queryParams collects per-parameter problems while parsing a query string.
type queryParams struct {
	values url.Values
	errs   map[string]string
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query(), errs: map[string]string{}}
}

func (q *queryParams) String(key string) string {
	return q.values.Get(key)
}

// Time parses an RFC 3339 timestamp or a plain date.
func (q *queryParams) Time(key string) *time.Time {
	v := q.values.Get(key)
	if v == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	q.errs[key] = "must be an RFC 3339 timestamp or YYYY-MM-DD date"
	return nil
}

// Int parses a positive integer. Missing values return 0.
func (q *queryParams) Int(key string) int {
	v := q.values.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		q.errs[key] = "must be a positive integer"
		return 0
	}
	return n
}

// Ok writes a validation response and reports false when any parameter
// failed to parse.
func (q *queryParams) Ok(w http.ResponseWriter) bool {
	if len(q.errs) == 0 {
		return true
	}
	httpx.WriteValidation(w, q.errs)
	return false
}
