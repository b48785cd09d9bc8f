package frame

import "errors"

// errNotThisKind is returned by a variant's Parse function when the
// given Frame does not match that variant's recognition predicate. It is
// unexported: callers are expected to call Recognize/Kind first and only
// Parse the matching accessor, so this should never surface outside the
// package in practice.
var errNotThisKind = errors.New("frame: does not match this kind")
