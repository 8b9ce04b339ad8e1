package types

import (
	"context"
	"fmt"
	"sort"
)

// Generator is a zero argument fixture function as seen by a scenario engine.
type Generator func() string

// Exports maps an exported function name to its generator.
type Exports map[string]Generator

// Lookup returns the named generator or nil.
func (e Exports) Lookup(name string) Generator {
	if e == nil {
		return nil
	}
	return e[name]
}

// Names returns exported names in sorted order.
func (e Exports) Names() []string {
	result := make([]string, 0, len(e))
	for name := range e {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Functions lifts every generator into a Function ignoring the context.
func (e Exports) Functions() Functions {
	result := make(Functions, len(e))
	for name, generate := range e {
		generate := generate
		result[name] = func(context.Context) (string, error) {
			return generate(), nil
		}
	}
	return result
}

// Function is the context aware form of a Generator used inside the module,
// so spans and cancellation follow the caller.
type Function func(ctx context.Context) (string, error)

// Functions maps an exported function name to its context aware form.
type Functions map[string]Function

// Lookup returns the named function or nil.
func (f Functions) Lookup(name string) Function {
	if f == nil {
		return nil
	}
	return f[name]
}

// Exports binds every function to a background context for the engine
// boundary. A function error is a fault of the random source and is raised
// as a panic to the calling engine.
func (f Functions) Exports() Exports {
	result := make(Exports, len(f))
	for name, fn := range f {
		name, fn := name, fn
		result[name] = func() string {
			value, err := fn(context.Background())
			if err != nil {
				panic(fmt.Errorf("%v: %w", name, err))
			}
			return value
		}
	}
	return result
}
