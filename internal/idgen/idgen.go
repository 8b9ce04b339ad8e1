package idgen

import "github.com/google/uuid"

// NewFunc produces a sample identifier.
var NewFunc = func() string { return uuid.NewString() }

// New returns a new sample identifier.
func New() string { return NewFunc() }
