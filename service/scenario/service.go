package scenario

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/viant/afs"
	"github.com/viant/fixture/model"
	"github.com/viant/fixture/model/types"
	"github.com/viant/fixture/tracing"
	"gopkg.in/yaml.v3"
)

// Service loads scenarios and binds their variables to fixture functions.
type Service struct {
	fs        afs.Service
	functions types.Functions
	logger    logr.Logger
}

// Load reads and validates a YAML scenario from any afs supported URL.
func (s *Service) Load(ctx context.Context, URL string) (*model.Scenario, error) {
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario %v: %w", URL, err)
	}
	return s.Decode(data)
}

// Decode parses and validates a YAML scenario.
func (s *Service) Decode(data []byte) (*model.Scenario, error) {
	scenario := &model.Scenario{}
	if err := yaml.Unmarshal(data, scenario); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

// Bind calls each variable's function once and expands the request templates.
func (s *Service) Bind(ctx context.Context, scenario *model.Scenario) (binding *model.Binding, err error) {
	ctx, span := tracing.StartSpan(ctx, "scenario.bind")
	defer func() { tracing.EndSpan(span, err) }()
	if err = scenario.Validate(); err != nil {
		return nil, err
	}
	variables := make(map[string]string, len(scenario.Variables))
	for name, function := range scenario.Variables {
		generate := s.functions.Lookup(function)
		if generate == nil {
			return nil, fmt.Errorf("scenario %v: variable %v: %w", scenario.Name, name, types.NewFunctionNotFoundError(function))
		}
		if variables[name], err = generate(ctx); err != nil {
			return nil, fmt.Errorf("scenario %v: variable %v: %w", scenario.Name, name, err)
		}
		s.logger.V(1).Info("bound variable", "scenario", scenario.Name, "variable", name, "value", variables[name])
	}

	binding = &model.Binding{
		Scenario:  scenario.Name,
		Target:    scenario.Target,
		Variables: variables,
		Requests:  make([]*model.Request, 0, len(scenario.Requests)),
	}
	for _, request := range scenario.Requests {
		bound := &model.Request{
			Method: request.Method,
			URL:    expandText(request.URL, variables),
		}
		if request.JSON != nil {
			var expanded interface{}
			if expanded, err = expandValue(request.JSON, variables); err != nil {
				return nil, fmt.Errorf("scenario %v: %v %v: %w", scenario.Name, request.Method, request.URL, err)
			}
			bound.JSON = expanded.(map[string]interface{})
		}
		binding.Requests = append(binding.Requests, bound)
	}
	return binding, nil
}

// New creates a scenario service resolving variables through functions
func New(functions types.Functions, options ...Option) *Service {
	ret := &Service{functions: functions, logger: logr.Discard()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}
