package extension

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/viant/fixture/model/types"
)

const valueField = "Value"

// Actions provides action service
type Actions struct {
	services map[string]types.Service
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service; a name can be registered once.
func (s *Actions) Register(service types.Service) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.services[service.Name()]; ok {
		return types.NewDuplicateServiceError(service.Name())
	}
	s.services[service.Name()] = service
	return nil
}

// Services returns registered services ordered by name
func (s *Actions) Services() []types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	result := make([]types.Service, 0, len(s.services))
	for _, service := range s.services {
		result = append(result, service)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name() < result[j].Name() })
	return result
}

// Functions returns every method that takes an empty input and produces a
// single string Value, keyed by method name. Two services exporting the same
// method name is an error.
func (s *Actions) Functions() (types.Functions, error) {
	result := types.Functions{}
	owners := map[string]string{}
	for _, service := range s.Services() {
		for _, signature := range service.Methods() {
			if !isGenerator(signature) {
				continue
			}
			if owner, ok := owners[signature.Name]; ok {
				return nil, types.NewDuplicateFunctionError(signature.Name, service.Name(), owner)
			}
			method, err := service.Method(signature.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to export %v.%v: %w", service.Name(), signature.Name, err)
			}
			owners[signature.Name] = service.Name()
			result[signature.Name] = bind(method, signature)
		}
	}
	return result, nil
}

// Exports returns Functions bound for a scenario engine.
func (s *Actions) Exports() (types.Exports, error) {
	functions, err := s.Functions()
	if err != nil {
		return nil, err
	}
	return functions.Exports(), nil
}

func bind(method types.Executable, signature types.Signature) types.Function {
	return func(ctx context.Context) (string, error) {
		input := reflect.New(signature.Input.Elem()).Interface()
		output := reflect.New(signature.Output.Elem())
		if err := method(ctx, input, output.Interface()); err != nil {
			return "", err
		}
		return output.Elem().FieldByName(valueField).String(), nil
	}
}

func isGenerator(signature types.Signature) bool {
	if signature.Input == nil || signature.Output == nil {
		return false
	}
	if signature.Input.Kind() != reflect.Ptr || signature.Output.Kind() != reflect.Ptr {
		return false
	}
	input, output := signature.Input.Elem(), signature.Output.Elem()
	if input.Kind() != reflect.Struct || input.NumField() != 0 {
		return false
	}
	if output.Kind() != reflect.Struct || output.NumField() != 1 {
		return false
	}
	field, ok := output.FieldByName(valueField)
	return ok && field.Type.Kind() == reflect.String
}

// NewActions creates a new action service
func NewActions() *Actions {
	return &Actions{
		services: make(map[string]types.Service),
	}
}
