package generator

import (
	"math/rand/v2"
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

// Source is the randomness capability a Generator depends on.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Number returns a value in [min, max].
	Number(min, max int) int
}

// pooledSource hands every call its own unlocked faker so parallel virtual
// users do not serialize on a single locked generator. A faker is owned by one
// call between Get and Put.
type pooledSource struct {
	pool sync.Pool
}

func (s *pooledSource) Float64() float64 {
	faker := s.pool.Get().(*gofakeit.Faker)
	defer s.pool.Put(faker)
	return faker.Float64()
}

func (s *pooledSource) Number(min, max int) int {
	faker := s.pool.Get().(*gofakeit.Faker)
	defer s.pool.Put(faker)
	return faker.Number(min, max)
}

// NewSource returns the default concurrency safe source.
func NewSource() Source {
	return &pooledSource{
		pool: sync.Pool{New: func() any {
			return gofakeit.NewFaker(rand.NewPCG(rand.Uint64(), rand.Uint64()), false)
		}},
	}
}
