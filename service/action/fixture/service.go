package fixture

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/fixture/generator"
	"github.com/viant/fixture/model/types"
	"github.com/viant/fixture/tracing"
)

// Name of the service as used by scenarios.
const Name = "fixture"

// Service exposes the fixture generator as an action service with one method
// per exported function.
type Service struct {
	generator  *generator.Generator
	registerer prometheus.Registerer
	metrics    *metrics
	logger     logr.Logger
}

// Input is empty: fixture functions take no arguments.
type Input struct{}

// Output carries the generated value.
type Output struct {
	Value string `json:"value,omitempty"`
}

// Name returns the service name
func (s *Service) Name() string {
	return Name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        generator.TeamNameFunc,
			Description: "Returns team_ followed by a random base-36 fragment.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
		{
			Name:        generator.IPFunc,
			Description: "Returns 192.168.a.b with both octets in [0, 254].",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
		{
			Name:        generator.HostnameFunc,
			Description: "Returns host_ followed by a random base-36 fragment and .com.",
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		},
	}
}

// Method returns the specified method
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case strings.ToLower(generator.TeamNameFunc):
		return s.executable(generator.TeamNameFunc, s.generator.TeamName), nil
	case strings.ToLower(generator.IPFunc):
		return s.executable(generator.IPFunc, s.generator.IP), nil
	case strings.ToLower(generator.HostnameFunc):
		return s.executable(generator.HostnameFunc, s.generator.Hostname), nil
	default:
		return nil, types.NewMethodNotFoundError(name)
	}
}

func (s *Service) executable(name string, generate types.Generator) types.Executable {
	return func(ctx context.Context, in, out interface{}) error {
		if _, ok := in.(*Input); !ok {
			return types.NewInvalidInputError(in)
		}
		output, ok := out.(*Output)
		if !ok {
			return types.NewInvalidOutputError(out)
		}
		_, span := tracing.StartSpan(ctx, Name+"."+name)
		output.Value = generate()
		span.WithAttributes(map[string]string{"fixture.value": output.Value})
		tracing.EndSpan(span, nil)
		s.metrics.incGenerated(name)
		s.logger.V(2).Info("generated fixture", "function", name, "value", output.Value)
		return nil
	}
}

// New creates a fixture action service
func New(options ...Option) *Service {
	ret := &Service{logger: logr.Discard()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.generator == nil {
		ret.generator = generator.New()
	}
	ret.metrics = newMetrics(ret.registerer)
	return ret
}
