package pregel

import "errors"

// ErrInvalidSchema is the error NodeValueStore.validate wraps for a property
// key not declared in the algorithm's Schema with the requested type. Run
// does not call validate, so a Result never carries it.
var ErrInvalidSchema = errors.New("pregel: property key not declared in schema")

// ErrScheduleCancelled is the sentinel wrapped into a cancelled Result's
// error field when the termination flag was observed set mid-run.
var ErrScheduleCancelled = errors.New("pregel: schedule cancelled")
