package app

import "errors"

// ErrProjectNotFound is returned by lookups for an id absent from the snapshot.
var ErrProjectNotFound = errors.New("project not found")
