// Package clock stamps generated samples; tests replace NowFunc.
package clock

import "time"

// NowFunc returns the current UTC time.
var NowFunc = func() time.Time { return time.Now().UTC() }

// Now returns the sample timestamp.
func Now() time.Time { return NowFunc() }
