package domain

import "errors"

// ErrNotFound is returned by stores when a row does not resolve. Modules map
// it onto their own not-found sentinels.
var ErrNotFound = errors.New("record not found")
