package utils

import "time"

const (
	// AuthCachePrefix prefixes auth token hashes in the auth cache DB.
	AuthCachePrefix = "auth:"

	// AuthCacheTTL is how long a validated token hash stays cached.
	AuthCacheTTL = time.Hour

	// MatchCacheTTL is how long a computed match result stays cached.
	MatchCacheTTL = 5 * time.Minute
)
