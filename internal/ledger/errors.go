package ledger

import "errors"

// Sentinel errors for the ledger package.
var (
	// ErrPersist is returned when the backing file cannot be rewritten.
	// Callers must treat it as fatal: a silently failed persist would
	// corrupt the source-of-truth guarantee.
	ErrPersist = errors.New("ledger persist failed")
)
