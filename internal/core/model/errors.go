package model

import "errors"

// ErrUnavailable means the event source could not be queried at all, for
// example because usage access was never granted. It is distinct from an
// empty result: callers must be able to tell "no data" from "zero usage".
var ErrUnavailable = errors.New("usage data unavailable")
