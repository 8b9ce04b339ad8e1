package types

import "fmt"

func NewMethodNotFoundError(name string) error {
	return fmt.Errorf("method %v not found", name)
}

func NewInvalidInputError(in interface{}) error {
	return fmt.Errorf("invalid input %T", in)
}

func NewInvalidOutputError(in interface{}) error {
	return fmt.Errorf("invalid output %T", in)
}

func NewFunctionNotFoundError(name string) error {
	return fmt.Errorf("unknown function %v", name)
}

func NewDuplicateServiceError(name string) error {
	return fmt.Errorf("service %v already registered", name)
}

func NewDuplicateFunctionError(name, service, other string) error {
	return fmt.Errorf("function %v exported by both %v and %v", name, other, service)
}
