// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package initdata

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const (
	KeyHash     = "hash"
	KeyUser     = "user"
	KeyAuthDate = "auth_date"
)

// Fields is a decoded init data payload.
type Fields map[string]string

// Parse splits raw on '&' and each pair on its first '='. Keys and values
// are percent-decoded with query semantics ('+' is a space).
//
// Empty segments are skipped. A pair without '=' has an empty value.
// Empty keys, bad escapes and repeated keys make the payload malformed.
func Parse(raw string) (Fields, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformed)
	}

	fields := make(Fields)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: bad key encoding: %w", ErrMalformed, err)
		}
		if key == "" {
			return nil, fmt.Errorf("%w: empty key", ErrMalformed)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: bad value encoding for %q: %w", ErrMalformed, key, err)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformed, key)
		}

		fields[key] = value
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrMalformed)
	}

	return fields, nil
}

// CheckString builds the data-check string over every field except hash.
// The result does not depend on the order the fields were received in.
func CheckString(fields Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == KeyHash {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + "=" + fields[k]
	}
	return strings.Join(lines, "\n")
}

// Encode serializes fields back into an init data string with
// deterministic key order.
func Encode(fields Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fields[k]))
	}
	return b.String()
}
