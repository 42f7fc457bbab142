package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced key of the form "<prefix>:<digest>". The
// parts are JSON-encoded before hashing so mixed-type components produce
// a stable digest.
func hashKey(prefix string, parts ...any) string {
	enc, _ := json.Marshal(parts)
	return prefix + ":" + Hash(enc)
}

// Hash returns the full hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
