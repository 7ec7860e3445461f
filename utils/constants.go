package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// GeoCachePrefix is the prefix for cached route analyses.
const GeoCachePrefix = "geo:route:"

// GeoCacheTTL bounds how long a cached route analysis is trusted.
const GeoCacheTTL = 6 * time.Hour

// MarketRatePrefix is the prefix for cached per-corridor suggested prices.
const MarketRatePrefix = "market:rate:"
