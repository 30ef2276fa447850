package hashing

import (
	"crypto/sha256"
	"fmt"
	"strings"
)

// Sha256String calculates the SHA256 hash of a given string and returns its
// hex representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

// DedupeKey derives a deterministic key from ordered identity parts, joined
// with a separator that cannot occur inside the parts' hash space.
func DedupeKey(parts ...string) string {
	return Sha256String(strings.Join(parts, "|"))
}
