// Package extension provides the run-time registry of action services and
// flattens their zero argument methods into named fixture functions that a
// scenario engine can look up.
package extension
