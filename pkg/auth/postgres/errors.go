package postgres

import "errors"

// ErrQueryFailed wraps any database failure other than not-found and duplicate.
var ErrQueryFailed = errors.New("postgres: query failed")
