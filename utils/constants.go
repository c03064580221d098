// File: utils/constants.go
package utils

import "time"

// ScheduleCachePrefix is the prefix used for Redis doctor-schedule cache keys.
const ScheduleCachePrefix = "schedule:"

// ScheduleCacheTTL is the time-to-live for cached doctor schedules.
const ScheduleCacheTTL = 10 * time.Minute
