package model

import "errors"

// ErrNotFound is returned by stores when no document matches the query.
var ErrNotFound = errors.New("not found")
