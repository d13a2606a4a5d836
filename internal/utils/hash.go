package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSHA256 computes an HMAC-SHA256 digest of data keyed with key.
//
// A new HMAC instance is created on each call.
//
// Example usage:
//
//	secret := utils.HMACSHA256([]byte("WebAppData"), []byte(botToken))
func HMACSHA256(key, data []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}

// HMACSHA256Hex computes an HMAC-SHA256 digest of data keyed with key
// and returns it as a lowercase hex string.
func HMACSHA256Hex(key, data []byte) string {
	return hex.EncodeToString(HMACSHA256(key, data))
}

// EqualDigest compares two digest strings byte for byte in constant time.
// Case matters: "AB" and "ab" are different digests.
func EqualDigest(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
