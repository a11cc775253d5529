package utils

// Cache key prefixes.
const (
	AuthCachePrefix = "auth:"
	LotListCacheKey = "lots:all"
)
