package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// TitlesKey generates the cache key for a channel's used-title snapshot.
// Channel names are user input; hashing keeps them filesystem- and
// delimiter-safe.
func TitlesKey(channel string) string {
	hash := sha256.Sum256([]byte(channel))
	return "shortsman:titles:v1:" + hex.EncodeToString(hash[:])
}
