package storage

import "errors"

// ErrNotFound is returned by Load when a namespace has no stored blob.
var ErrNotFound = errors.New("namespace not found")
