package repositories

import "errors"

// ErrNotFound marks lookups that legitimately miss. Services unwrap it to
// distinguish "absent" from a real failure.
var ErrNotFound = errors.New("not found")
