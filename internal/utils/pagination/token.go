// Package pagination encodes opaque keyset cursors for list endpoints.
package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidToken is returned for any cursor that does not decode to the expected shape.
var ErrInvalidToken = errors.New("invalid pagination token")

const separator = "|"

// EntryCursor is the keyset position of the last entry on a page. Entries are
// ordered by date, then createdAt, then entry ID as a tie-breaker.
type EntryCursor struct {
	Date      string
	CreatedAt string
	EntryID   string
}

// EncodeEntryCursor creates the token for the page following c.
func EncodeEntryCursor(c EntryCursor) string {
	return EncodeMultiFieldToken(c.Date, c.CreatedAt, c.EntryID)
}

// DecodeEntryCursor parses a token produced by EncodeEntryCursor.
func DecodeEntryCursor(token string) (EntryCursor, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return EntryCursor{}, err
	}
	if len(fields) != 3 {
		return EntryCursor{}, fmt.Errorf("%w: expected 3 fields, got %d", ErrInvalidToken, len(fields))
	}
	if _, err := time.Parse(time.DateOnly, fields[0]); err != nil {
		return EntryCursor{}, fmt.Errorf("%w: date parse: %w", ErrInvalidToken, err)
	}
	if fields[1] == "" || fields[2] == "" {
		return EntryCursor{}, fmt.Errorf("%w: empty position field", ErrInvalidToken)
	}
	return EntryCursor{Date: fields[0], CreatedAt: fields[1], EntryID: fields[2]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields.
// Fields must not contain the separator.
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, separator)))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w (base64 decode): %w", ErrInvalidToken, err)
	}
	return strings.Split(string(decodedBytes), separator), nil
}
