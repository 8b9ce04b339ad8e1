// Package model defines the data exchanged around fixture generation: load
// test scenarios referencing fixture functions, their bound form, and
// individual generated samples.
package model
