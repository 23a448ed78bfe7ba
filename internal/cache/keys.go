package cache

import "fmt"

// Cache keys are derived in one place so that readers and invalidators can
// never disagree on the format.

// SummaryKey returns the key under which the monthly category summary for
// one user is cached: "summary:<userID>:<year>-<month>", month zero-padded
// to two digits. Callers are responsible for passing a month in [1,12].
func SummaryKey(userID string, year int, month int) string {
	return fmt.Sprintf("summary:%s:%d-%02d", userID, year, month)
}
