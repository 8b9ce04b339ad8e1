package model

import "fmt"

// Scenario is a load test execution unit that fills request templates with
// fixture values.
type Scenario struct {
	Name   string `json:"name" yaml:"name"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	// Variables maps a variable name to an exported fixture function name.
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Requests  []*Request        `json:"requests,omitempty" yaml:"requests,omitempty"`
}

// Request is a request template; URL and string JSON values may reference
// variables as {{ name }}.
type Request struct {
	Method string                 `json:"method" yaml:"method"`
	URL    string                 `json:"url" yaml:"url"`
	JSON   map[string]interface{} `json:"json,omitempty" yaml:"json,omitempty"`
}

// Validate checks required fields
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name was empty")
	}
	for i, request := range s.Requests {
		if request == nil {
			return fmt.Errorf("scenario %v: request[%d] was empty", s.Name, i)
		}
		if request.Method == "" {
			return fmt.Errorf("scenario %v: request[%d] method was empty", s.Name, i)
		}
		if request.URL == "" {
			return fmt.Errorf("scenario %v: request[%d] url was empty", s.Name, i)
		}
	}
	return nil
}

// Binding is a scenario with every variable resolved and every template expanded.
type Binding struct {
	Scenario  string            `json:"scenario" yaml:"scenario"`
	Target    string            `json:"target,omitempty" yaml:"target,omitempty"`
	Variables map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Requests  []*Request        `json:"requests,omitempty" yaml:"requests,omitempty"`
}
