// File: utils/constants.go
package utils

import "time"

// IdempotencyKeyHeader carries the client-generated submission token.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// IdempotencyCachePrefix is the prefix used for Redis idempotency cache keys.
const IdempotencyCachePrefix = "idem:"

// IdempotencyCacheTTL is how long a stored submission is replayed for a
// repeated idempotency key.
const IdempotencyCacheTTL = 24 * time.Hour
