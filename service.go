package fixture

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/fixture/extension"
	"github.com/viant/fixture/generator"
	"github.com/viant/fixture/model"
	"github.com/viant/fixture/model/types"
	afixture "github.com/viant/fixture/service/action/fixture"
	"github.com/viant/fixture/service/scenario"
	"github.com/viant/fixture/tracing"
)

const maxPreallocatedSamples = 1024

// Service is the fixture façade: generator, action registry and scenario binder.
type Service struct {
	config            *Config
	source            generator.Source
	generator         *generator.Generator
	actions           *extension.Actions
	functions         types.Functions
	exports           types.Exports
	scenarios         *scenario.Service
	registerer        prometheus.Registerer
	logger            logr.Logger
	extensionServices []types.Service
	tracingErr        error
}

func (s *Service) init(options []Option) error {
	for _, option := range options {
		option(s)
	}
	if s.tracingErr != nil {
		return fmt.Errorf("failed to initialise tracing: %w", s.tracingErr)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return err
	}
	s.generator = generator.New(generator.WithSource(s.source))
	s.actions = extension.NewActions()
	if err := s.actions.Register(afixture.New(
		afixture.WithGenerator(s.generator),
		afixture.WithRegisterer(s.registerer),
		afixture.WithLogger(s.logger.WithName(afixture.Name)),
	)); err != nil {
		return err
	}
	for _, service := range s.extensionServices {
		if err := s.actions.Register(service); err != nil {
			return fmt.Errorf("failed to register extension: %w", err)
		}
	}
	var err error
	if s.functions, err = s.actions.Functions(); err != nil {
		return fmt.Errorf("failed to register extension: %w", err)
	}
	s.exports = s.functions.Exports()
	s.scenarios = scenario.New(s.functions, scenario.WithLogger(s.logger.WithName("scenario")))
	return nil
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Generator returns the underlying fixture generator
func (s *Service) Generator() *generator.Generator {
	return s.generator
}

// Actions returns the action service registry
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// Functions returns every fixture function in its context aware form
func (s *Service) Functions() types.Functions {
	return s.functions
}

// Exports returns every fixture function keyed by its exported name
func (s *Service) Exports() types.Exports {
	return s.exports
}

// Scenarios returns the scenario binding service
func (s *Service) Scenarios() *scenario.Service {
	return s.scenarios
}

// Generate calls the named function count times through the action service.
func (s *Service) Generate(ctx context.Context, function string, count int) (samples []*model.Sample, err error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid count %d", count)
	}
	generate := s.functions.Lookup(function)
	if generate == nil {
		return nil, types.NewFunctionNotFoundError(function)
	}
	ctx, span := tracing.StartSpan(ctx, "fixture.generate")
	span.WithAttributes(map[string]string{"fixture.function": function})
	defer func() { tracing.EndSpan(span, err) }()

	samples = make([]*model.Sample, 0, min(count, maxPreallocatedSamples))
	for i := 0; i < count; i++ {
		if err = ctx.Err(); err != nil {
			return samples, err
		}
		var value string
		if value, err = generate(ctx); err != nil {
			return samples, err
		}
		samples = append(samples, model.NewSample(function, value))
	}
	s.logger.V(1).Info("generated samples", "function", function, "count", count)
	return samples, nil
}

// New creates a fixture service
func New(options ...Option) (*Service, error) {
	ret := &Service{logger: logr.Discard()}
	if err := ret.init(options); err != nil {
		return nil, err
	}
	return ret, nil
}
