// Package idgen issues identifiers for generated samples. Tests replace
// NewFunc to get predictable ids.
package idgen
