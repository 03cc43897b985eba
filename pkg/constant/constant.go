package constant

import "time"

// User roles as stored in the users table and carried in session tokens.
const (
	RoleUser     = "USER"
	RoleEnforcer = "ENFORCER"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// SlangCacheTTL is how long a cached slang projection stays valid.
const SlangCacheTTL = 1800 * time.Second

// RateLimiterPrefix namespaces rate counters in the cache.
const RateLimiterPrefix = "rate-limiter:"

// Per-route request ceilings. A window of zero means DefaultRateWindow.
const (
	DefaultRateWindow = 60 * time.Second

	LookupRateLimit        = 10
	ContributeRateLimit    = 8
	VerifyEmailRateLimit   = 4
	LoginRateLimit         = 4
	ResetPasswordRateLimit = 5

	RegisterRateLimit  = 2
	RegisterRateWindow = time.Hour

	ResetRequestRateLimit  = 5
	ResetRequestRateWindow = 3 * time.Hour
)
