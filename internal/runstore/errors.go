package runstore

import "errors"

// ErrNotFound indicates the requested run does not exist in the ledger.
var ErrNotFound = errors.New("run not found")
