package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for a future algorithm change.
const (
	DomainSearch = "gravsearch/search/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SearchID computes the content-addressed ID of a search record given its
// canonical object form. Two submissions of the same search share an ID.
func SearchID(record map[string]any) (string, error) {
	canonical, err := MarshalCanonical(record)
	if err != nil {
		return "", fmt.Errorf("SearchID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainSearch, canonical), nil
}

// MustSearchID is like SearchID but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustSearchID(record map[string]any) string {
	id, err := SearchID(record)
	if err != nil {
		panic(err)
	}
	return id
}
