package scenario

import (
	"github.com/go-logr/logr"
	"github.com/viant/afs"
)

type Option func(*Service)

// WithFs sets the storage service used to load scenarios
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
