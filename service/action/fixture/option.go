package fixture

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/viant/fixture/generator"
)

type Option func(*Service)

// WithGenerator sets the generator backing every method
func WithGenerator(g *generator.Generator) Option {
	return func(s *Service) {
		s.generator = g
	}
}

// WithRegisterer registers the generated_total counter with the supplied registry
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(s *Service) {
		s.registerer = registerer
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
